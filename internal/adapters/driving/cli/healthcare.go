package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gapi/internal/apis/google/healthcare"
	"github.com/custodia-labs/gapi/internal/transcode"
)

var (
	hcFilter    string
	hcOrderBy   string
	hcView      string
	hcPageSize  int64
	hcPageToken string
	hcArtifact  string
	hcTTL       time.Duration
)

var healthcareCmd = &cobra.Command{
	Use:   "healthcare",
	Short: "Cloud Healthcare API v1 (consents and HL7v2 messages)",
	Long: `Cloud Healthcare API v1.

Resources are addressed by their full names, for example
projects/p/locations/us-central1/datasets/d/consentStores/s.`,
}

var hcConsentsCmd = &cobra.Command{
	Use:   "consents",
	Short: "Manage consents in a consent store",
}

var hcConsentsListCmd = &cobra.Command{
	Use:   "list [consent-store]",
	Short: "List one page of consents",
	Args:  cobra.ExactArgs(1),
	RunE:  runHCConsentsList,
}

var hcConsentsGetCmd = &cobra.Command{
	Use:   "get [consent]",
	Short: "Show a consent, optionally at a revision (name@revision)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHCConsentsGet,
}

var hcConsentsActivateCmd = &cobra.Command{
	Use:   "activate [consent]",
	Short: "Activate the latest revision of a consent",
	Args:  cobra.ExactArgs(1),
	RunE:  runHCConsentsActivate,
}

var hcConsentsRevokeCmd = &cobra.Command{
	Use:   "revoke [consent]",
	Short: "Revoke the latest revision of a consent",
	Args:  cobra.ExactArgs(1),
	RunE:  runHCConsentsRevoke,
}

var hcMessagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read HL7v2 messages",
}

var hcMessagesListCmd = &cobra.Command{
	Use:   "list [hl7v2-store]",
	Short: "List one page of messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runHCMessagesList,
}

var hcMessagesGetCmd = &cobra.Command{
	Use:   "get [message]",
	Short: "Show a message",
	Args:  cobra.ExactArgs(1),
	RunE:  runHCMessagesGet,
}

func init() {
	hcConsentsListCmd.Flags().StringVar(&hcFilter, "filter", "", "filter expression")
	hcConsentsListCmd.Flags().Int64Var(&hcPageSize, "page-size", 0, "maximum consents per page")
	hcConsentsListCmd.Flags().StringVar(&hcPageToken, "page-token", "", "token of the page to fetch")

	hcConsentsActivateCmd.Flags().StringVar(&hcArtifact, "artifact", "", "consent artifact documenting the consent")
	hcConsentsActivateCmd.Flags().DurationVar(&hcTTL, "ttl", 0, "time to live of the activated consent, e.g. 720h")
	_ = hcConsentsActivateCmd.MarkFlagRequired("artifact")
	hcConsentsRevokeCmd.Flags().StringVar(&hcArtifact, "artifact", "", "consent artifact documenting the revocation")

	hcMessagesListCmd.Flags().StringVar(&hcFilter, "filter", "", "filter expression, e.g. send_date = \"2024-01-15\"")
	hcMessagesListCmd.Flags().StringVar(&hcOrderBy, "order-by", "", "ordering, e.g. \"send_time desc\"")
	hcMessagesListCmd.Flags().StringVar(&hcView, "view", "", "BASIC, FULL, RAW_ONLY, PARSED_ONLY or SCHEMATIZED_ONLY")
	hcMessagesListCmd.Flags().Int64Var(&hcPageSize, "page-size", 0, "maximum messages per page")
	hcMessagesListCmd.Flags().StringVar(&hcPageToken, "page-token", "", "token of the page to fetch")
	hcMessagesGetCmd.Flags().StringVar(&hcView, "view", "", "BASIC, FULL, RAW_ONLY, PARSED_ONLY or SCHEMATIZED_ONLY")

	hcConsentsCmd.AddCommand(hcConsentsListCmd, hcConsentsGetCmd, hcConsentsActivateCmd, hcConsentsRevokeCmd)
	hcMessagesCmd.AddCommand(hcMessagesListCmd, hcMessagesGetCmd)
	healthcareCmd.AddCommand(hcConsentsCmd, hcMessagesCmd)
	rootCmd.AddCommand(healthcareCmd)
}

func runHCConsentsList(cmd *cobra.Command, args []string) error {
	svc, err := newHealthcareService(cmd.Context())
	if err != nil {
		return err
	}

	call := svc.Projects.Locations.Datasets.ConsentStores.Consents.List(args[0]).Context(cmd.Context())
	if hcFilter != "" {
		call.Filter(hcFilter)
	}
	if hcPageSize > 0 {
		call.PageSize(hcPageSize)
	}
	if hcPageToken != "" {
		call.PageToken(hcPageToken)
	}

	list, err := call.Do()
	if err != nil {
		return apiError("list consents", err)
	}
	return printJSON(cmd, list)
}

func runHCConsentsGet(cmd *cobra.Command, args []string) error {
	svc, err := newHealthcareService(cmd.Context())
	if err != nil {
		return err
	}
	consent, err := svc.Projects.Locations.Datasets.ConsentStores.Consents.Get(args[0]).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("get consent", err)
	}
	return printJSON(cmd, consent)
}

func runHCConsentsActivate(cmd *cobra.Command, args []string) error {
	svc, err := newHealthcareService(cmd.Context())
	if err != nil {
		return err
	}

	req := &healthcare.ActivateConsentRequest{ConsentArtifact: hcArtifact}
	if hcTTL > 0 {
		req.Ttl = transcode.NewDuration(hcTTL)
	}
	consent, err := svc.Projects.Locations.Datasets.ConsentStores.Consents.Activate(args[0], req).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("activate consent", err)
	}
	return printJSON(cmd, consent)
}

func runHCConsentsRevoke(cmd *cobra.Command, args []string) error {
	svc, err := newHealthcareService(cmd.Context())
	if err != nil {
		return err
	}

	req := &healthcare.RevokeConsentRequest{ConsentArtifact: hcArtifact}
	consent, err := svc.Projects.Locations.Datasets.ConsentStores.Consents.Revoke(args[0], req).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("revoke consent", err)
	}
	return printJSON(cmd, consent)
}

func runHCMessagesList(cmd *cobra.Command, args []string) error {
	svc, err := newHealthcareService(cmd.Context())
	if err != nil {
		return err
	}

	call := svc.Projects.Locations.Datasets.Hl7V2Stores.Messages.List(args[0]).Context(cmd.Context())
	if hcFilter != "" {
		call.Filter(hcFilter)
	}
	if hcOrderBy != "" {
		call.OrderBy(hcOrderBy)
	}
	if hcView != "" {
		call.View(hcView)
	}
	if hcPageSize > 0 {
		call.PageSize(hcPageSize)
	}
	if hcPageToken != "" {
		call.PageToken(hcPageToken)
	}

	list, err := call.Do()
	if err != nil {
		return apiError("list messages", err)
	}
	return printJSON(cmd, list)
}

func runHCMessagesGet(cmd *cobra.Command, args []string) error {
	svc, err := newHealthcareService(cmd.Context())
	if err != nil {
		return err
	}
	call := svc.Projects.Locations.Datasets.Hl7V2Stores.Messages.Get(args[0]).Context(cmd.Context())
	if hcView != "" {
		call.View(hcView)
	}
	msg, err := call.Do()
	if err != nil {
		return apiError("get message", err)
	}
	return printJSON(cmd, msg)
}
