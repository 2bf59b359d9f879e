package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/api"
	"github.com/maxfit-project/maxfit/internal/output"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Training diary",
}

var diaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your diary entries",
	RunE:  runDiaryList,
}

var diaryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record how today's training went",
	Long: `Record a diary entry for today.

Example:
  maxfit diary add --did-today --workout "Treino A" \
    --feeling "cansada mas bem" --rating 4`,
	RunE: runDiaryAdd,
}

func init() {
	rootCmd.AddCommand(diaryCmd)
	diaryCmd.AddCommand(diaryListCmd, diaryAddCmd)

	diaryListCmd.Flags().Bool("json", false, "output as JSON")

	diaryAddCmd.Flags().Bool("did-today", false, "trained today")
	diaryAddCmd.Flags().String("goal", "", "goal you were working towards")
	diaryAddCmd.Flags().String("workout", "", "workout executed")
	diaryAddCmd.Flags().String("feeling", "", "how you felt")
	diaryAddCmd.Flags().Int("rating", 0, "self rating from 1 to 5")
}

func runDiaryList(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/diario"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	entries, err := client.ListDiaryEntries(ctx, id.ID)
	if err != nil {
		return apiError(err, "listing diary entries")
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(cmd, entries)
	}

	if len(entries) == 0 {
		printer.Info("No diary entries yet")
		return nil
	}

	printer.Header("Training Diary")
	table := output.NewQuietTable([]string{"DATE", "TRAINED", "WORKOUT", "FEELING", "RATING"}, printer.IsQuiet())
	for _, e := range entries {
		trained := "no"
		if e.DidToday {
			trained = "yes"
		}
		rating := "-"
		if e.Rating > 0 {
			rating = strconv.Itoa(e.Rating)
		}
		table.AddRow([]string{e.Date, trained, e.WorkoutDone, e.Feeling, rating})
	}
	table.Render()

	printer.PrintHints("diary list")
	return nil
}

func runDiaryAdd(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/diario"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	rating, _ := cmd.Flags().GetInt("rating")
	if rating < 0 || rating > 5 {
		return &output.CLIError{
			Summary:  "invalid rating",
			Detail:   "rating must be between 1 and 5",
			ExitCode: output.ExitUsageError,
		}
	}

	entry := api.DiaryEntry{TraineeID: id.ID, Rating: rating}
	entry.DidToday, _ = cmd.Flags().GetBool("did-today")
	entry.Goal, _ = cmd.Flags().GetString("goal")
	entry.WorkoutDone, _ = cmd.Flags().GetString("workout")
	entry.Feeling, _ = cmd.Flags().GetString("feeling")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if _, err := client.CreateDiaryEntry(ctx, entry); err != nil {
		return apiError(err, "saving diary entry")
	}

	printer.Success("Diary entry saved")
	printer.PrintHints("diary add")
	return nil
}
