package sdm

import (
	"fmt"

	"github.com/custodia-labs/gapi/internal/transcode"
)

// Trait names.
const (
	TraitInfo               = "sdm.devices.traits.Info"
	TraitConnectivity       = "sdm.devices.traits.Connectivity"
	TraitTemperature        = "sdm.devices.traits.Temperature"
	TraitHumidity           = "sdm.devices.traits.Humidity"
	TraitThermostatMode     = "sdm.devices.traits.ThermostatMode"
	TraitThermostatSetpoint = "sdm.devices.traits.ThermostatTemperatureSetpoint"
	TraitCameraLiveStream   = "sdm.devices.traits.CameraLiveStream"
	TraitCameraEventImage   = "sdm.devices.traits.CameraEventImage"
	TraitStructureInfo      = "sdm.structures.traits.Info"
	TraitRoomInfo           = "sdm.structures.traits.RoomInfo"
)

// Command names accepted by ExecuteCommand.
const (
	CommandSetThermostatMode    = "sdm.devices.commands.ThermostatMode.SetMode"
	CommandSetHeat              = "sdm.devices.commands.ThermostatTemperatureSetpoint.SetHeat"
	CommandSetCool              = "sdm.devices.commands.ThermostatTemperatureSetpoint.SetCool"
	CommandSetRange             = "sdm.devices.commands.ThermostatTemperatureSetpoint.SetRange"
	CommandGenerateRtspStream   = "sdm.devices.commands.CameraLiveStream.GenerateRtspStream"
	CommandExtendRtspStream     = "sdm.devices.commands.CameraLiveStream.ExtendRtspStream"
	CommandStopRtspStream       = "sdm.devices.commands.CameraLiveStream.StopRtspStream"
	CommandGenerateWebRtcStream = "sdm.devices.commands.CameraLiveStream.GenerateWebRtcStream"
	CommandExtendWebRtcStream   = "sdm.devices.commands.CameraLiveStream.ExtendWebRtcStream"
	CommandStopWebRtcStream     = "sdm.devices.commands.CameraLiveStream.StopWebRtcStream"
	CommandGenerateImage        = "sdm.devices.commands.CameraEventImage.GenerateImage"
)

var streamResults = transcode.Schema{
	"expiresAt": {Kind: transcode.KindTime},
}

// resultSchemas lists the commands whose results carry transcoded fields.
var resultSchemas = map[string]transcode.Schema{
	CommandGenerateRtspStream:   streamResults,
	CommandExtendRtspStream:     streamResults,
	CommandGenerateWebRtcStream: streamResults,
	CommandExtendWebRtcStream:   streamResults,
}

// ResultSchema returns the transcoding schema for the results of command.
// Commands without transcoded result fields have an empty schema.
func ResultSchema(command string) transcode.Schema {
	return resultSchemas[command]
}

// DecodeResults returns the results of command with transcoded fields, such
// as a stream's expiresAt, converted to their in-memory types. Results of
// commands without transcoded fields are returned as a copy.
func (r *ExecuteDeviceCommandResponse) DecodeResults(command string) (map[string]any, error) {
	out, err := ResultSchema(command).Decode(r.Results)
	if err != nil {
		return nil, fmt.Errorf("decode %s results: %w", command, err)
	}
	return out, nil
}
