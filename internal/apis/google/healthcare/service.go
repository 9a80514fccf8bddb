// Package healthcare provides access to the Cloud Healthcare API v1: consent
// management and HL7v2 message stores.
//
// See https://cloud.google.com/healthcare
//
// Usage example:
//
//	svc, err := healthcare.NewService(ctx)
//	consents := svc.Projects.Locations.Datasets.ConsentStores.Consents
//	list, err := consents.List(storeName).PageSize(20).Do()
//
// Resource names are full paths such as
// "projects/p/locations/l/datasets/d/consentStores/s/consents/c" and are
// expanded into the URL without escaping their slashes.
package healthcare

import (
	"context"
	"net/http"

	"google.golang.org/api/option"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

const basePath = "https://healthcare.googleapis.com/"

// OAuth2 scopes used by this API.
const (
	// Read, write and manage healthcare data
	CloudHealthcareScope = "https://www.googleapis.com/auth/cloud-healthcare"

	// See, edit, configure, and delete your Google Cloud data and see the email
	// address for your Google Account.
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

// NewService creates a new Service.
func NewService(ctx context.Context, opts ...option.ClientOption) (*Service, error) {
	core, err := google.NewClient(ctx, google.Defaults{
		BasePath: basePath,
		Scopes:   []string{CloudHealthcareScope, CloudPlatformScope},
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
	datasets := &ProjectsLocationsDatasetsService{
		ConsentStores: &ProjectsLocationsDatasetsConsentStoresService{
			s:                s,
			Consents:         &ProjectsLocationsDatasetsConsentStoresConsentsService{s: s},
			ConsentArtifacts: &ProjectsLocationsDatasetsConsentStoresConsentArtifactsService{s: s},
		},
		Hl7V2Stores: &ProjectsLocationsDatasetsHl7V2StoresService{
			Messages: &ProjectsLocationsDatasetsHl7V2StoresMessagesService{s: s},
		},
	}
	s.Projects = &ProjectsService{
		Locations: &ProjectsLocationsService{Datasets: datasets},
	}
	return s
}

// Service is the Cloud Healthcare API client.
type Service struct {
	core *google.Client

	Projects *ProjectsService
}

// Client returns the shared request client.
func (s *Service) Client() *google.Client {
	return s.core
}

type ProjectsService struct {
	Locations *ProjectsLocationsService
}

type ProjectsLocationsService struct {
	Datasets *ProjectsLocationsDatasetsService
}

type ProjectsLocationsDatasetsService struct {
	ConsentStores *ProjectsLocationsDatasetsConsentStoresService

	Hl7V2Stores *ProjectsLocationsDatasetsHl7V2StoresService
}

type ProjectsLocationsDatasetsConsentStoresService struct {
	s *Service

	Consents *ProjectsLocationsDatasetsConsentStoresConsentsService

	ConsentArtifacts *ProjectsLocationsDatasetsConsentStoresConsentArtifactsService
}

type ProjectsLocationsDatasetsConsentStoresConsentsService struct {
	s *Service
}

type ProjectsLocationsDatasetsConsentStoresConsentArtifactsService struct {
	s *Service
}

type ProjectsLocationsDatasetsHl7V2StoresService struct {
	Messages *ProjectsLocationsDatasetsHl7V2StoresMessagesService
}

type ProjectsLocationsDatasetsHl7V2StoresMessagesService struct {
	s *Service
}
