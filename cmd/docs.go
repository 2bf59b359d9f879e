package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/maxfit-project/maxfit/internal/output"
)

var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate CLI documentation",
	Hidden: true,
	RunE:   runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().String("format", "markdown", "output format (markdown, man)")
	docsCmd.Flags().String("output", "./docs", "output directory")
}

func runDocs(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	dir, _ := cmd.Flags().GetString("output")

	switch format {
	case "markdown":
		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			return fmt.Errorf("generating markdown docs: %w", err)
		}
	case "man":
		header := &doc.GenManHeader{Title: "MAXFIT", Section: "1"}
		if err := doc.GenManTree(rootCmd, header, dir); err != nil {
			return fmt.Errorf("generating man pages: %w", err)
		}
	default:
		return &output.CLIError{
			Summary:  fmt.Sprintf("unknown docs format: %s", format),
			Detail:   "supported formats are markdown and man",
			ExitCode: output.ExitUsageError,
		}
	}

	newPrinter().Success("Documentation written to %s", dir)
	return nil
}
