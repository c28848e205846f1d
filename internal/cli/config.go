package cli

import (
	"fmt"

	"github.com/chronoconv/chronoconv/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.chronoconv/config.yaml.

Keys:
  zone            default time zone (IANA name, Local, or UTC)
  civil.enabled   register the civil date/time converters (true/false)
  log.level       logrus level (warn by default)
  schema_version  config schema version`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		logger.WithField("key", key).Debug("config updated")
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FilePath()
		if len(args) == 1 {
			path = args[0]
		}
		result, err := config.ValidateFile(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s is valid\n", path)
			return nil
		}
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  %s\n", issue)
		}
		return fmt.Errorf("%s has %d schema issue(s)", path, len(result.Issues))
	},
}
