package cli

import (
	"github.com/spf13/cobra"
)

var (
	paFilter    string
	paPageSize  int64
	paPageToken string
	paLanguage  string
	paRegion    string
)

var placeActionsCmd = &cobra.Command{
	Use:   "placeactions",
	Short: "My Business Place Actions API v1",
}

var paLinksCmd = &cobra.Command{
	Use:   "links",
	Short: "Manage place action links of a location",
}

var paLinksListCmd = &cobra.Command{
	Use:   "list [location]",
	Short: "List one page of place action links, e.g. for locations/123",
	Args:  cobra.ExactArgs(1),
	RunE:  runPALinksList,
}

var paLinksGetCmd = &cobra.Command{
	Use:   "get [link]",
	Short: "Show a place action link",
	Args:  cobra.ExactArgs(1),
	RunE:  runPALinksGet,
}

var paLinksDeleteCmd = &cobra.Command{
	Use:   "delete [link]",
	Short: "Delete a place action link",
	Args:  cobra.ExactArgs(1),
	RunE:  runPALinksDelete,
}

var paTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the place action types available for a location or region",
	Args:  cobra.NoArgs,
	RunE:  runPATypes,
}

func init() {
	paLinksListCmd.Flags().StringVar(&paFilter, "filter", "", "filter, e.g. placeActionType=DINING_RESERVATION")
	paLinksListCmd.Flags().Int64Var(&paPageSize, "page-size", 0, "maximum links per page")
	paLinksListCmd.Flags().StringVar(&paPageToken, "page-token", "", "token of the page to fetch")

	paTypesCmd.Flags().StringVar(&paFilter, "filter", "", "filter, e.g. location=locations/123")
	paTypesCmd.Flags().StringVar(&paLanguage, "language", "", "BCP-47 language for display names")
	paTypesCmd.Flags().StringVar(&paRegion, "region", "", "ISO 3166-1 alpha-2 region code")
	paTypesCmd.Flags().Int64Var(&paPageSize, "page-size", 0, "maximum types per page")
	paTypesCmd.Flags().StringVar(&paPageToken, "page-token", "", "token of the page to fetch")

	paLinksCmd.AddCommand(paLinksListCmd, paLinksGetCmd, paLinksDeleteCmd)
	placeActionsCmd.AddCommand(paLinksCmd, paTypesCmd)
	rootCmd.AddCommand(placeActionsCmd)
}

func runPALinksList(cmd *cobra.Command, args []string) error {
	svc, err := newPlaceActionsService(cmd.Context())
	if err != nil {
		return err
	}

	call := svc.Locations.PlaceActionLinks.List(args[0]).Context(cmd.Context())
	if paFilter != "" {
		call.Filter(paFilter)
	}
	if paPageSize > 0 {
		call.PageSize(paPageSize)
	}
	if paPageToken != "" {
		call.PageToken(paPageToken)
	}

	list, err := call.Do()
	if err != nil {
		return apiError("list place action links", err)
	}
	return printJSON(cmd, list)
}

func runPALinksGet(cmd *cobra.Command, args []string) error {
	svc, err := newPlaceActionsService(cmd.Context())
	if err != nil {
		return err
	}
	link, err := svc.Locations.PlaceActionLinks.Get(args[0]).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("get place action link", err)
	}
	return printJSON(cmd, link)
}

func runPALinksDelete(cmd *cobra.Command, args []string) error {
	svc, err := newPlaceActionsService(cmd.Context())
	if err != nil {
		return err
	}
	if _, err := svc.Locations.PlaceActionLinks.Delete(args[0]).Context(cmd.Context()).Do(); err != nil {
		return apiError("delete place action link", err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}

func runPATypes(cmd *cobra.Command, _ []string) error {
	svc, err := newPlaceActionsService(cmd.Context())
	if err != nil {
		return err
	}

	call := svc.PlaceActionTypeMetadata.List().Context(cmd.Context())
	if paFilter != "" {
		call.Filter(paFilter)
	}
	if paLanguage != "" {
		call.LanguageCode(paLanguage)
	}
	if paRegion != "" {
		call.RegionCode(paRegion)
	}
	if paPageSize > 0 {
		call.PageSize(paPageSize)
	}
	if paPageToken != "" {
		call.PageToken(paPageToken)
	}

	list, err := call.Do()
	if err != nil {
		return apiError("list place action types", err)
	}
	return printJSON(cmd, list)
}
