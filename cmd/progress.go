package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/output"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your physical progress history",
	Long: `Show the history of physical measurements recorded by your trainer.

Examples:
  maxfit progress
  maxfit progress --json`,
	RunE: runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().Bool("json", false, "output as JSON")
}

func runProgress(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/meu-progresso"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	entries, err := client.ListProgress(ctx, id.ID)
	if err != nil {
		return apiError(err, "listing progress")
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(cmd, entries)
	}

	if len(entries) == 0 {
		printer.Info("No measurements recorded yet")
		return nil
	}

	printer.Header("Physical Progress")
	table := output.NewQuietTable([]string{"DATE", "WEIGHT", "CHEST", "WAIST", "HIPS", "ARM"}, printer.IsQuiet())
	for _, e := range entries {
		table.AddRow([]string{
			e.Date,
			fmtMeasure(e.WeightKG, "kg"),
			fmtMeasure(e.ChestCM, "cm"),
			fmtMeasure(e.WaistCM, "cm"),
			fmtMeasure(e.HipsCM, "cm"),
			fmtMeasure(e.ArmCM, "cm"),
		})
	}
	table.Render()

	// Weight delta between the first and last measurement.
	if len(entries) > 1 {
		delta := entries[len(entries)-1].WeightKG - entries[0].WeightKG
		printer.Info("Weight change since first measurement: %+.1f kg", delta)
	}

	printer.PrintHints("progress")
	return nil
}

func fmtMeasure(v float64, unit string) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f %s", v, unit)
}
