package cli

import (
	"context"

	"google.golang.org/api/option"

	"github.com/custodia-labs/gapi/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gapi/internal/apis/google"
	"github.com/custodia-labs/gapi/internal/apis/google/drive"
	"github.com/custodia-labs/gapi/internal/apis/google/healthcare"
	"github.com/custodia-labs/gapi/internal/apis/google/placeactions"
	"github.com/custodia-labs/gapi/internal/apis/google/sdm"
	"github.com/custodia-labs/gapi/internal/logger"
)

// credentials picks the credential source. Flags replace the config file as a
// group, so --token never combines with a configured key file.
func credentials(settings file.Settings) google.Credentials {
	if credentialsFile != "" || accessToken != "" {
		return google.Credentials{File: credentialsFile, AccessToken: accessToken}
	}
	return google.Credentials{File: settings.CredentialsFile, AccessToken: settings.AccessToken}
}

// clientOptions builds the options for one API. An endpoint override without
// credentials talks to the endpoint unauthenticated, as local emulators
// expect.
func clientOptions(ctx context.Context, api google.ServiceType, scopes ...string) ([]option.ClientOption, error) {
	settings := configStore.Settings()
	creds := credentials(settings)

	base := endpoint
	if base == "" {
		base = configStore.Endpoint(api)
	}
	if base != "" && creds.File == "" && creds.AccessToken == "" {
		creds.NoAuth = true
	}

	opts, err := google.ClientOptions(ctx, creds, scopes...)
	if err != nil {
		return nil, err
	}
	if base != "" {
		logger.Debug("%s endpoint overridden: %s", api, base)
		opts = append(opts, option.WithEndpoint(base))
	}
	return opts, nil
}

// configureClient applies the per-API settings that live on the client.
func configureClient(c *google.Client, api google.ServiceType) {
	c.UserAgent = configStore.Settings().UserAgent
	if cfg, ok := configStore.RateLimit(api); ok {
		logger.Debug("%s rate limited to %.2f req/s (burst %d)", api, cfg.RequestsPerSecond, cfg.BurstSize)
		c.RateLimiter = google.NewRateLimiterWithConfig(cfg)
	}
}

func newDriveService(ctx context.Context) (*drive.Service, error) {
	opts, err := clientOptions(ctx, google.ServiceDrive, drive.DriveScope)
	if err != nil {
		return nil, err
	}
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	configureClient(svc.Client(), google.ServiceDrive)
	return svc, nil
}

func newHealthcareService(ctx context.Context) (*healthcare.Service, error) {
	opts, err := clientOptions(ctx, google.ServiceHealthcare, healthcare.CloudHealthcareScope)
	if err != nil {
		return nil, err
	}
	svc, err := healthcare.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	configureClient(svc.Client(), google.ServiceHealthcare)
	return svc, nil
}

func newPlaceActionsService(ctx context.Context) (*placeactions.Service, error) {
	opts, err := clientOptions(ctx, google.ServicePlaceActions, placeactions.BusinessManageScope)
	if err != nil {
		return nil, err
	}
	svc, err := placeactions.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	configureClient(svc.Client(), google.ServicePlaceActions)
	return svc, nil
}

func newSDMService(ctx context.Context) (*sdm.Service, error) {
	opts, err := clientOptions(ctx, google.ServiceSDM, sdm.SdmServiceScope)
	if err != nil {
		return nil, err
	}
	svc, err := sdm.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	configureClient(svc.Client(), google.ServiceSDM)
	return svc, nil
}
