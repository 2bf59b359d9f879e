package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maxfit-project/maxfit/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Display the current maxfit configuration.

Examples:
  maxfit config                # Show all config
  maxfit config --path         # Show config file path
  maxfit config --json         # Output as JSON`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().Bool("path", false, "show config file path")
	configCmd.Flags().Bool("json", false, "output as JSON")
}

func runConfig(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	showPath, _ := cmd.Flags().GetBool("path")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if showPath {
		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			printer.Info("No config file found (using defaults)")
		} else {
			printer.Info("Config file: %s", configFile)
		}
		return nil
	}

	if jsonOutput {
		return writeJSON(cmd, cfg)
	}

	printer.Header("Current Configuration")

	table := output.NewQuietTable([]string{"KEY", "VALUE"}, printer.IsQuiet())
	table.AddRow([]string{"api.base_url", cfg.API.BaseURL})
	table.AddRow([]string{"api.timeout", cfg.API.Timeout.String()})
	table.AddRow([]string{"session.backend", cfg.Session.Backend})
	table.AddRow([]string{"session.dir", cfg.Session.Dir})
	table.AddRow([]string{"logging.level", cfg.Logging.Level})
	table.AddRow([]string{"logging.format", cfg.Logging.Format})
	table.AddRow([]string{"output.colors", boolString(cfg.Output.Colors)})
	table.Render()

	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
