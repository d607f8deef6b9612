package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/edfind/internal/config"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/paths"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show edfind configuration",
	Long: `Show the edfind configuration stored in ~/.config/edfind/config.yaml.

Values may be overridden with EDFIND_* environment variables, for example
EDFIND_TIER=fast. Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  edfind config

  # Get a specific value
  edfind config get tier

  # Show which file is in use
  edfind config path

See Also: edfind doctor`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys. Array values are printed one per line.`,
	Example: `  # Get the discovery tier
  edfind config get tier

  # Get extra search paths
  edfind config get search_paths

See Also: edfind config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all effective configuration values in YAML format.`,
	Example: `  # List all configuration
  edfind config list

See Also: edfind config get`,
	RunE: runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Long: `Print the configuration file in use. When no file was found, prints the
default location and notes that defaults are in effect.`,
	Args: cobra.NoArgs,
	RunE: runConfigPath,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	w := cmd.OutOrStdout()

	// Check if value exists
	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}

	switch v := viper.Get(key).(type) {
	case []any:
		// Array values - print one per line
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	default:
		fmt.Fprintln(w, viper.GetString(key))
	}

	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(loadedConfig)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if used := config.FileUsed(); used != "" {
		fmt.Fprintln(w, used)
		return nil
	}
	fmt.Fprintf(w, "%s (not found, defaults in use)\n", paths.ConfigFile())
	return nil
}
