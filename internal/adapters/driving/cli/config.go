package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gapi/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and edit ~/.gapi/config.toml.

Recognised keys:
  credentials_file             service account or authorized user key file
  access_token                 OAuth2 access token
  verbose                      log HTTP requests (true/false)
  user_agent                   extra User-Agent fragment
  endpoint.<api>               base URL override (drive, healthcare, placeactions, sdm)
  rate_limit.<api>.enabled     pace requests with the API's default rate
  rate_limit.<api>.rps         pace requests at this many requests per second
  rate_limit.<api>.burst       burst size for rps`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configStore.Path())
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured keys",
	Args:  cobra.NoArgs,
	Run:   runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Values that parse as booleans, integers or
floats are stored with that type; everything else is stored as a string.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configStore.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		cmd.Printf("Removed %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) {
	keys := configStore.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No configuration set.")
		return
	}
	for _, key := range keys {
		val, _ := configStore.Get(key)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, displayValue(key, val))
	}
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("%s is not set", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), fmt.Sprint(val))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, val := args[0], parseValue(args[1])
	if err := configStore.Set(key, val); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	cmd.Printf("Set %s = %s\n", key, displayValue(key, val))
	return nil
}

// parseValue types a command-line value the way TOML would.
func parseValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func displayValue(key string, val any) string {
	s := fmt.Sprint(val)
	if key == file.KeyAccessToken {
		return maskSecret(s)
	}
	return s
}

// maskSecret keeps the first and last four characters of a secret.
func maskSecret(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}
