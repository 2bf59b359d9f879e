package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/api"
	"github.com/maxfit-project/maxfit/internal/output"
)

var traineesCmd = &cobra.Command{
	Use:   "trainees",
	Short: "Manage your linked trainees (trainer only)",
}

var traineesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trainees linked to you",
	RunE:  runTraineesList,
}

var traineesAvailableCmd = &cobra.Command{
	Use:   "available",
	Short: "List trainees without a trainer",
	RunE:  runTraineesAvailable,
}

var traineesLinkCmd = &cobra.Command{
	Use:   "link <trainee id>",
	Short: "Link a trainee to you",
	Args:  cobra.ExactArgs(1),
	RunE:  runTraineesLink,
}

func init() {
	rootCmd.AddCommand(traineesCmd)
	traineesCmd.AddCommand(traineesListCmd, traineesAvailableCmd, traineesLinkCmd)

	traineesListCmd.Flags().Bool("json", false, "output as JSON")
}

func runTraineesList(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/meus-alunos"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	trainees, err := client.ListTrainees(ctx, id.ID)
	if err != nil {
		return apiError(err, "listing trainees")
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(cmd, trainees)
	}

	if len(trainees) == 0 {
		printer.Info("No trainees linked yet")
		return nil
	}

	printer.Header("Your Trainees")
	renderTrainees(printer, trainees)

	printer.PrintHints("trainees list")
	return nil
}

func runTraineesAvailable(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/meus-alunos"); err != nil {
		return err
	}
	printer := newPrinter()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	trainees, err := client.ListAvailableTrainees(ctx)
	if err != nil {
		return apiError(err, "listing available trainees")
	}

	if len(trainees) == 0 {
		printer.Info("No unlinked trainees right now")
		return nil
	}

	printer.Header("Available Trainees")
	renderTrainees(printer, trainees)
	printer.Info("Run 'maxfit trainees link <id>' to link one to you")
	return nil
}

func runTraineesLink(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/meus-alunos"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}
	traineeID, err := parseID(args[0], "trainee id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := client.LinkTrainee(ctx, id.ID, traineeID); err != nil {
		return apiError(err, "linking trainee")
	}

	printer.Success("Trainee %d linked to you", traineeID)
	return nil
}

func renderTrainees(printer *output.Printer, trainees []api.TraineeSummary) {
	table := output.NewQuietTable([]string{"ID", "NAME", "EMAIL", "CITY"}, printer.IsQuiet())
	for _, tr := range trainees {
		table.AddRow([]string{strconv.FormatInt(tr.ID, 10), tr.Name, tr.Email, tr.City})
	}
	table.Render()
}
