// Package placeactions provides access to the My Business Place Actions API
// v1, which manages the links a business location exposes for actions such as
// booking or ordering.
//
// See https://developers.google.com/my-business/
package placeactions

import (
	"context"
	"net/http"

	"google.golang.org/api/option"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

const basePath = "https://mybusinessplaceactions.googleapis.com/"

// BusinessManageScope grants management of Business Profile listings.
const BusinessManageScope = "https://www.googleapis.com/auth/business.manage"

// NewService creates a new Service.
func NewService(ctx context.Context, opts ...option.ClientOption) (*Service, error) {
	core, err := google.NewClient(ctx, google.Defaults{
		BasePath: basePath,
		Scopes:   []string{BusinessManageScope},
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
	s.Locations = &LocationsService{
		PlaceActionLinks: &LocationsPlaceActionLinksService{s: s},
	}
	s.PlaceActionTypeMetadata = &PlaceActionTypeMetadataService{s: s}
	return s
}

type Service struct {
	core *google.Client

	Locations *LocationsService

	PlaceActionTypeMetadata *PlaceActionTypeMetadataService
}

// Client returns the shared request client.
func (s *Service) Client() *google.Client {
	return s.core
}

type LocationsService struct {
	PlaceActionLinks *LocationsPlaceActionLinksService
}

type LocationsPlaceActionLinksService struct {
	s *Service
}

type PlaceActionTypeMetadataService struct {
	s *Service
}
