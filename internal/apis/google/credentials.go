package google

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// ErrAmbiguousCredentials indicates more than one credential source was set.
var ErrAmbiguousCredentials = errors.New("google: more than one credential source configured")

// Credentials selects where the credential handle comes from. At most one
// source may be set. When none is set, Application Default Credentials are used.
type Credentials struct {
	// File is a service account or authorized user JSON key file.
	File string
	// JSON is the content of such a key file.
	JSON []byte
	// AccessToken is a pre-issued OAuth2 access token.
	AccessToken string
	// Provider supplies tokens from an external credential manager.
	Provider TokenProvider
	// NoAuth sends requests without credentials.
	NoAuth bool
}

func (c Credentials) sources() int {
	n := 0
	for _, set := range []bool{c.File != "", len(c.JSON) > 0, c.AccessToken != "", c.Provider != nil, c.NoAuth} {
		if set {
			n++
		}
	}
	return n
}

// ClientOptions converts credentials into client options for NewService.
// Scopes apply to key-file credentials only; token providers and access
// tokens carry their own scopes.
func ClientOptions(ctx context.Context, creds Credentials, scopes ...string) ([]option.ClientOption, error) {
	if creds.sources() > 1 {
		return nil, ErrAmbiguousCredentials
	}

	switch {
	case creds.NoAuth:
		return []option.ClientOption{option.WithoutAuthentication()}, nil
	case creds.AccessToken != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: creds.AccessToken,
			TokenType:   "Bearer",
		})
		return []option.ClientOption{option.WithTokenSource(ts)}, nil
	case creds.Provider != nil:
		return []option.ClientOption{option.WithTokenSource(NewTokenSource(ctx, creds.Provider))}, nil
	}

	data := creds.JSON
	if creds.File != "" {
		var err error
		data, err = os.ReadFile(creds.File)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
	}
	if len(data) == 0 {
		// Application Default Credentials, resolved by the transport.
		if len(scopes) > 0 {
			return []option.ClientOption{option.WithScopes(scopes...)}, nil
		}
		return nil, nil
	}

	//nolint:staticcheck // key files are supplied by the operator
	found, err := oauthgoogle.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return []option.ClientOption{option.WithTokenSource(found.TokenSource)}, nil
}
