// Package sdm provides access to the Smart Device Management API v1 for
// Google Nest devices.
//
// See https://developers.google.com/nest/device-access
//
// Device, structure and room traits are returned as loosely typed JSON
// objects keyed by trait name. Command results are decoded per command with
// ExecuteDeviceCommandResponse.DecodeResults.
package sdm

import (
	"context"
	"net/http"

	"google.golang.org/api/option"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

const basePath = "https://smartdevicemanagement.googleapis.com/"

// SdmServiceScope grants read/write access to Nest devices and structures.
const SdmServiceScope = "https://www.googleapis.com/auth/sdm.service"

// NewService creates a new Service.
func NewService(ctx context.Context, opts ...option.ClientOption) (*Service, error) {
	core, err := google.NewClient(ctx, google.Defaults{
		BasePath: basePath,
		Scopes:   []string{SdmServiceScope},
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
	s.Enterprises = &EnterprisesService{
		Devices: &EnterprisesDevicesService{s: s},
		Structures: &EnterprisesStructuresService{
			s:     s,
			Rooms: &EnterprisesStructuresRoomsService{s: s},
		},
	}
	return s
}

type Service struct {
	core *google.Client

	Enterprises *EnterprisesService
}

// Client returns the shared request client.
func (s *Service) Client() *google.Client {
	return s.core
}

type EnterprisesService struct {
	Devices *EnterprisesDevicesService

	Structures *EnterprisesStructuresService
}

type EnterprisesDevicesService struct {
	s *Service
}

type EnterprisesStructuresService struct {
	s *Service

	Rooms *EnterprisesStructuresRoomsService
}

type EnterprisesStructuresRoomsService struct {
	s *Service
}
