package cli

import (
	"runtime"

	"github.com/spf13/cobra"
	"google.golang.org/api/googleapi"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("gapi version %s\n", version)
		if verbose {
			cmd.Printf("  go:         %s\n", runtime.Version())
			cmd.Printf("  user agent: %s\n", googleapi.UserAgent)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
