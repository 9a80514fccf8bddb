// Package drive provides access to the Google Drive API v3.
//
// See https://developers.google.com/drive/
//
// Usage example:
//
//	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
//	list, err := svc.Files.List().Q("trashed = false").PageSize(50).Context(ctx).Do()
//
// Every method performs exactly one HTTP request. List responses carry a
// NextPageToken that the caller passes back through PageToken.
package drive

import (
	"context"
	"net/http"

	"google.golang.org/api/option"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

const (
	basePath   = "https://www.googleapis.com/drive/v3/"
	uploadPath = "/upload/drive/v3/files"
)

// OAuth2 scopes used by this API.
const (
	// See, edit, create, and delete all of your Google Drive files
	DriveScope = "https://www.googleapis.com/auth/drive"

	// See, create, and delete its own configuration data in your Google Drive
	DriveAppdataScope = "https://www.googleapis.com/auth/drive.appdata"

	// See, edit, create, and delete only the specific Google Drive files you
	// use with this app
	DriveFileScope = "https://www.googleapis.com/auth/drive.file"

	// See information about your Google Drive files
	DriveMetadataReadonlyScope = "https://www.googleapis.com/auth/drive.metadata.readonly"

	// See and download all your Google Drive files
	DriveReadonlyScope = "https://www.googleapis.com/auth/drive.readonly"
)

// NewService creates a new Service.
func NewService(ctx context.Context, opts ...option.ClientOption) (*Service, error) {
	core, err := google.NewClient(ctx, google.Defaults{
		BasePath: basePath,
		Scopes:   []string{DriveScope},
	}, opts...)
	if err != nil {
		return nil, err
	}
	return newService(core), nil
}

// New creates a new Service around an already authenticated client.
func New(client *http.Client) (*Service, error) {
	core, err := google.NewClientWithHTTPClient(client, basePath)
	if err != nil {
		return nil, err
	}
	return newService(core), nil
}

func newService(core *google.Client) *Service {
	s := &Service{core: core}
	s.About = &AboutService{s: s}
	s.Changes = &ChangesService{s: s}
	s.Files = &FilesService{s: s}
	s.Permissions = &PermissionsService{s: s}
	s.Revisions = &RevisionsService{s: s}
	return s
}

// Service is the Drive API client.
type Service struct {
	core *google.Client

	About *AboutService

	Changes *ChangesService

	Files *FilesService

	Permissions *PermissionsService

	Revisions *RevisionsService
}

// Client returns the shared request client, for setting BasePath,
// UserAgent or a RateLimiter.
func (s *Service) Client() *google.Client {
	return s.core
}

type AboutService struct {
	s *Service
}

type ChangesService struct {
	s *Service
}

type FilesService struct {
	s *Service
}

type PermissionsService struct {
	s *Service
}

type RevisionsService struct {
	s *Service
}
