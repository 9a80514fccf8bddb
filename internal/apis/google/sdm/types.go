package sdm

import (
	"google.golang.org/api/googleapi"
)

// Device: Device resource represents an instance of enterprise managed
// device in the property.
type Device struct {
	// Name: Required. The resource name of the device. For example:
	// "enterprises/XYZ/devices/123".
	Name string `json:"name,omitempty"`

	// ParentRelations: Assignee details of the device.
	ParentRelations []*ParentRelation `json:"parentRelations,omitempty"`

	// Traits: Output only. Device traits keyed by trait name.
	Traits map[string]any `json:"traits,omitempty"`

	// Type: Output only. Type of the device for general display purposes.
	Type string `json:"type,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// Trait returns the named trait object, such as TraitInfo.
func (d *Device) Trait(name string) (map[string]any, bool) {
	return trait(d.Traits, name)
}

// ParentRelation: Represents device relationships, for instance, structure
// or room to which the device is assigned.
type ParentRelation struct {
	// DisplayName: Output only. The custom name of the relation.
	DisplayName string `json:"displayName,omitempty"`

	// Parent: Output only. The name of the relation, for example
	// "enterprises/XYZ/structures/ABC".
	Parent string `json:"parent,omitempty"`
}

type ListDevicesResponse struct {
	Devices       []*Device `json:"devices,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// Structure: Structure resource represents an instance of enterprise
// managed home or hotel room.
type Structure struct {
	Name string `json:"name,omitempty"`

	// Traits: Structure traits.
	Traits map[string]any `json:"traits,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// Trait returns the named trait object.
func (s *Structure) Trait(name string) (map[string]any, bool) {
	return trait(s.Traits, name)
}

type ListStructuresResponse struct {
	NextPageToken string       `json:"nextPageToken,omitempty"`
	Structures    []*Structure `json:"structures,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// Room: Room resource represents an instance of sub-space within a
// structure such as rooms in a hotel suite or rental apartment.
type Room struct {
	Name string `json:"name,omitempty"`

	// Traits: Room traits.
	Traits map[string]any `json:"traits,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

type ListRoomsResponse struct {
	NextPageToken string  `json:"nextPageToken,omitempty"`
	Rooms         []*Room `json:"rooms,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// ExecuteDeviceCommandRequest: Request message for
// SmartDeviceManagementService.ExecuteDeviceCommand
type ExecuteDeviceCommandRequest struct {
	// Command: The command name to execute, represented by the fully
	// qualified protobuf message name.
	Command string `json:"command,omitempty"`

	// Params: The command message to execute, represented as a Struct.
	Params map[string]any `json:"params,omitempty"`
}

// ExecuteDeviceCommandResponse: Response message for
// SmartDeviceManagementService.ExecuteDeviceCommand
type ExecuteDeviceCommandResponse struct {
	// Results: The results of executing the command, in wire form.
	Results map[string]any `json:"results,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

func trait(traits map[string]any, name string) (map[string]any, bool) {
	v, ok := traits[name].(map[string]any)
	return v, ok
}
