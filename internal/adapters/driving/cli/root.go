package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gapi/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gapi/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Global flags.
var (
	verbose         bool
	configDir       string
	credentialsFile string
	accessToken     string
	endpoint        string
)

// configStore is opened before any command runs.
var configStore *file.ConfigStore

var rootCmd = &cobra.Command{
	Use:   "gapi",
	Short: "Command-line client for Google REST APIs",
	Long: `gapi calls Google Drive, Cloud Healthcare, My Business Place Actions and
Smart Device Management from the command line.

Each command performs exactly one API request and prints the response as
JSON. Credentials come from --credentials or --token, the config file, or
Application Default Credentials.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every HTTP request to stderr")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.gapi)")
	flags.StringVar(&credentialsFile, "credentials", "", "service account or authorized user JSON key file")
	flags.StringVar(&accessToken, "token", "", "OAuth2 access token")
	flags.StringVar(&endpoint, "endpoint", "", "override the API base URL")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

func loadConfig(_ *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	configStore = store

	logger.SetVerbose(verbose || store.Settings().Verbose)
	logger.Debug("config loaded from %s", store.Path())
	return nil
}
