package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gapi/internal/apis/google/sdm"
)

var (
	sdmFilter    string
	sdmPageSize  int64
	sdmPageToken string
	sdmParams    string
)

var sdmCmd = &cobra.Command{
	Use:   "sdm",
	Short: "Smart Device Management API v1 (Nest devices)",
}

var sdmDevicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Inspect and command devices",
}

var sdmDevicesListCmd = &cobra.Command{
	Use:   "list [enterprise]",
	Short: "List devices, e.g. for enterprises/project-id",
	Args:  cobra.ExactArgs(1),
	RunE:  runSDMDevicesList,
}

var sdmDevicesGetCmd = &cobra.Command{
	Use:   "get [device]",
	Short: "Show a device and its traits",
	Args:  cobra.ExactArgs(1),
	RunE:  runSDMDevicesGet,
}

var sdmDevicesExecCmd = &cobra.Command{
	Use:   "exec [device] [command]",
	Short: "Execute a device command",
	Long: `Execute a device command and print its decoded results.

The command is the fully qualified name, for example
sdm.devices.commands.ThermostatMode.SetMode, and --params its JSON
parameters: --params '{"mode": "HEAT"}'.`,
	Args: cobra.ExactArgs(2),
	RunE: runSDMDevicesExec,
}

var sdmStructuresCmd = &cobra.Command{
	Use:   "structures",
	Short: "Inspect structures",
}

var sdmStructuresListCmd = &cobra.Command{
	Use:   "list [enterprise]",
	Short: "List structures",
	Args:  cobra.ExactArgs(1),
	RunE:  runSDMStructuresList,
}

var sdmRoomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Inspect rooms",
}

var sdmRoomsListCmd = &cobra.Command{
	Use:   "list [structure]",
	Short: "List rooms of a structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runSDMRoomsList,
}

func init() {
	sdmDevicesListCmd.Flags().StringVar(&sdmFilter, "filter", "", "filter on customName or parent structure")
	sdmDevicesListCmd.Flags().Int64Var(&sdmPageSize, "page-size", 0, "maximum devices per page")
	sdmDevicesListCmd.Flags().StringVar(&sdmPageToken, "page-token", "", "token of the page to fetch")
	sdmDevicesExecCmd.Flags().StringVar(&sdmParams, "params", "", "command parameters as a JSON object")

	sdmDevicesCmd.AddCommand(sdmDevicesListCmd, sdmDevicesGetCmd, sdmDevicesExecCmd)
	sdmStructuresCmd.AddCommand(sdmStructuresListCmd)
	sdmRoomsCmd.AddCommand(sdmRoomsListCmd)
	sdmCmd.AddCommand(sdmDevicesCmd, sdmStructuresCmd, sdmRoomsCmd)
	rootCmd.AddCommand(sdmCmd)
}

func runSDMDevicesList(cmd *cobra.Command, args []string) error {
	svc, err := newSDMService(cmd.Context())
	if err != nil {
		return err
	}

	call := svc.Enterprises.Devices.List(args[0]).Context(cmd.Context())
	if sdmFilter != "" {
		call.Filter(sdmFilter)
	}
	if sdmPageSize > 0 {
		call.PageSize(sdmPageSize)
	}
	if sdmPageToken != "" {
		call.PageToken(sdmPageToken)
	}

	list, err := call.Do()
	if err != nil {
		return apiError("list devices", err)
	}
	return printJSON(cmd, list)
}

func runSDMDevicesGet(cmd *cobra.Command, args []string) error {
	svc, err := newSDMService(cmd.Context())
	if err != nil {
		return err
	}
	dev, err := svc.Enterprises.Devices.Get(args[0]).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("get device", err)
	}
	return printJSON(cmd, dev)
}

func runSDMDevicesExec(cmd *cobra.Command, args []string) error {
	req := &sdm.ExecuteDeviceCommandRequest{Command: args[1]}
	if sdmParams != "" {
		if err := json.Unmarshal([]byte(sdmParams), &req.Params); err != nil {
			return fmt.Errorf("invalid --params: %w", err)
		}
	}

	svc, err := newSDMService(cmd.Context())
	if err != nil {
		return err
	}
	resp, err := svc.Enterprises.Devices.ExecuteCommand(args[0], req).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("execute command", err)
	}

	results, err := resp.DecodeResults(req.Command)
	if err != nil {
		return err
	}
	if results == nil {
		results = map[string]any{}
	}
	return printJSON(cmd, results)
}

func runSDMStructuresList(cmd *cobra.Command, args []string) error {
	svc, err := newSDMService(cmd.Context())
	if err != nil {
		return err
	}
	list, err := svc.Enterprises.Structures.List(args[0]).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("list structures", err)
	}
	return printJSON(cmd, list)
}

func runSDMRoomsList(cmd *cobra.Command, args []string) error {
	svc, err := newSDMService(cmd.Context())
	if err != nil {
		return err
	}
	list, err := svc.Enterprises.Structures.Rooms.List(args[0]).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("list rooms", err)
	}
	return printJSON(cmd, list)
}
