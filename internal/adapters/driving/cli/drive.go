package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google/drive"
)

// Flags shared by the drive commands.
var (
	drivePageSize   int64
	drivePageToken  string
	driveQuery      string
	driveOrderBy    string
	driveFields     string
	driveOutput     string
	driveMimeType   string
	driveName       string
	driveUploadType string
	driveParent     string
	driveAllDrives  bool
)

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Google Drive API v3",
}

var driveAboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show the user, storage quota and capabilities",
	Args:  cobra.NoArgs,
	RunE:  runDriveAbout,
}

var driveFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List, fetch, upload and delete files",
}

var driveFilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of files",
	Long: `List one page of files. When more results exist the response carries a
nextPageToken; pass it back with --page-token to fetch the next page.`,
	Args: cobra.NoArgs,
	RunE: runDriveFilesList,
}

var driveFilesGetCmd = &cobra.Command{
	Use:   "get [file-id]",
	Short: "Show a file's metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runDriveFilesGet,
}

var driveFilesDownloadCmd = &cobra.Command{
	Use:   "download [file-id]",
	Short: "Download a file's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDriveFilesDownload,
}

var driveFilesExportCmd = &cobra.Command{
	Use:   "export [file-id]",
	Short: "Export a Google Workspace document to another format",
	Args:  cobra.ExactArgs(1),
	RunE:  runDriveFilesExport,
}

var driveFilesUploadCmd = &cobra.Command{
	Use:   "upload [path]",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDriveFilesUpload,
}

var driveFilesDeleteCmd = &cobra.Command{
	Use:   "delete [file-id]",
	Short: "Permanently delete a file, skipping the trash",
	Args:  cobra.ExactArgs(1),
	RunE:  runDriveFilesDelete,
}

var driveChangesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Track changes to files",
}

var driveChangesStartTokenCmd = &cobra.Command{
	Use:   "start-token",
	Short: "Get the page token for listing future changes",
	Args:  cobra.NoArgs,
	RunE:  runDriveChangesStartToken,
}

var driveChangesListCmd = &cobra.Command{
	Use:   "list [page-token]",
	Short: "List one page of changes since a page token",
	Args:  cobra.ExactArgs(1),
	RunE:  runDriveChangesList,
}

func init() {
	driveFilesListCmd.Flags().StringVarP(&driveQuery, "query", "q", "", "search query, e.g. \"name contains 'report'\"")
	driveFilesListCmd.Flags().StringVar(&driveOrderBy, "order-by", "", "comma-separated sort keys")
	driveFilesListCmd.Flags().Int64Var(&drivePageSize, "page-size", 0, "maximum files per page")
	driveFilesListCmd.Flags().StringVar(&drivePageToken, "page-token", "", "token of the page to fetch")
	driveFilesListCmd.Flags().StringVar(&driveFields, "fields", "", "partial response field mask")
	driveFilesListCmd.Flags().BoolVar(&driveAllDrives, "all-drives", false, "include shared drive items")

	driveFilesGetCmd.Flags().StringVar(&driveFields, "fields", "", "partial response field mask")
	driveFilesDownloadCmd.Flags().StringVarP(&driveOutput, "output", "o", "", "write to file instead of stdout")
	driveFilesExportCmd.Flags().StringVarP(&driveOutput, "output", "o", "", "write to file instead of stdout")
	driveFilesExportCmd.Flags().StringVar(&driveMimeType, "mime-type", "", "target MIME type, e.g. application/pdf")
	_ = driveFilesExportCmd.MarkFlagRequired("mime-type")
	driveFilesUploadCmd.Flags().StringVar(&driveName, "name", "", "file name in Drive (default: local base name)")
	driveFilesUploadCmd.Flags().StringVar(&driveParent, "parent", "", "parent folder ID")
	driveFilesUploadCmd.Flags().StringVar(&driveUploadType, "mime-type", "application/octet-stream", "content MIME type")

	driveChangesListCmd.Flags().Int64Var(&drivePageSize, "page-size", 0, "maximum changes per page")

	driveFilesCmd.AddCommand(driveFilesListCmd, driveFilesGetCmd, driveFilesDownloadCmd,
		driveFilesExportCmd, driveFilesUploadCmd, driveFilesDeleteCmd)
	driveChangesCmd.AddCommand(driveChangesStartTokenCmd, driveChangesListCmd)
	driveCmd.AddCommand(driveAboutCmd, driveFilesCmd, driveChangesCmd)
	rootCmd.AddCommand(driveCmd)
}

func runDriveAbout(cmd *cobra.Command, _ []string) error {
	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}
	about, err := svc.About.Get().Context(cmd.Context()).Do()
	if err != nil {
		return apiError("about", err)
	}
	return printJSON(cmd, about)
}

func runDriveFilesList(cmd *cobra.Command, _ []string) error {
	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}

	call := svc.Files.List().Context(cmd.Context())
	if driveQuery != "" {
		call.Q(driveQuery)
	}
	if driveOrderBy != "" {
		call.OrderBy(driveOrderBy)
	}
	if drivePageSize > 0 {
		call.PageSize(drivePageSize)
	}
	if drivePageToken != "" {
		call.PageToken(drivePageToken)
	}
	if driveFields != "" {
		call.Fields(googleapi.Field(driveFields))
	}
	if driveAllDrives {
		call.IncludeItemsFromAllDrives(true).SupportsAllDrives(true)
	}

	list, err := call.Do()
	if err != nil {
		return apiError("list files", err)
	}
	return printJSON(cmd, list)
}

func runDriveFilesGet(cmd *cobra.Command, args []string) error {
	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}
	call := svc.Files.Get(args[0]).Context(cmd.Context())
	if driveFields != "" {
		call.Fields(googleapi.Field(driveFields))
	}
	f, err := call.Do()
	if err != nil {
		return apiError("get file", err)
	}
	return printJSON(cmd, f)
}

func runDriveFilesDownload(cmd *cobra.Command, args []string) error {
	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}
	res, err := svc.Files.Get(args[0]).Context(cmd.Context()).Download()
	if err != nil {
		return apiError("download file", err)
	}
	defer res.Body.Close()

	n, err := writeOutput(cmd, driveOutput, res.Body)
	if err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	if driveOutput != "" {
		cmd.Printf("Wrote %d bytes to %s\n", n, driveOutput)
	}
	return nil
}

func runDriveFilesExport(cmd *cobra.Command, args []string) error {
	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}
	res, err := svc.Files.Export(args[0], driveMimeType).Context(cmd.Context()).Download()
	if err != nil {
		return apiError("export file", err)
	}
	defer res.Body.Close()

	n, err := writeOutput(cmd, driveOutput, res.Body)
	if err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	if driveOutput != "" {
		cmd.Printf("Wrote %d bytes to %s\n", n, driveOutput)
	}
	return nil
}

func runDriveFilesUpload(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}

	meta := &drive.File{Name: driveName}
	if meta.Name == "" {
		meta.Name = filepath.Base(args[0])
	}
	if driveParent != "" {
		meta.Parents = []string{driveParent}
	}

	created, err := svc.Files.Create(meta).Media(f, driveUploadType).Context(cmd.Context()).Do()
	if err != nil {
		return apiError("upload file", err)
	}
	return printJSON(cmd, created)
}

func runDriveFilesDelete(cmd *cobra.Command, args []string) error {
	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}
	if err := svc.Files.Delete(args[0]).Context(cmd.Context()).Do(); err != nil {
		return apiError("delete file", err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}

func runDriveChangesStartToken(cmd *cobra.Command, _ []string) error {
	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}
	tok, err := svc.Changes.GetStartPageToken().Context(cmd.Context()).Do()
	if err != nil {
		return apiError("get start page token", err)
	}
	return printJSON(cmd, tok)
}

func runDriveChangesList(cmd *cobra.Command, args []string) error {
	svc, err := newDriveService(cmd.Context())
	if err != nil {
		return err
	}
	call := svc.Changes.List(args[0]).Context(cmd.Context())
	if drivePageSize > 0 {
		call.PageSize(drivePageSize)
	}
	list, err := call.Do()
	if err != nil {
		return apiError("list changes", err)
	}
	return printJSON(cmd, list)
}
