package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/maxfit-project/maxfit/internal/api"
	"github.com/maxfit-project/maxfit/internal/gate"
	"github.com/maxfit-project/maxfit/internal/output"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the dashboard for the signed-in account",
	Long: `Show the landing screen for the signed-in account. Trainees get their
workout summary, assigned plans, and joined challenges; trainers get their
linked trainees.`,
	RunE: runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

func runHome(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	switch gate.ResolveLandingRoute(store) {
	case gate.PathTraineeHome:
		return traineeHome(printer)
	case gate.PathTrainerHome:
		return trainerHome(printer)
	default:
		return &output.CLIError{
			Summary:    "not signed in",
			Suggestion: "Run 'maxfit login' to sign in",
			ExitCode:   output.ExitAuthError,
		}
	}
}

func traineeHome(printer *output.Printer) error {
	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	// The dashboard widgets are independent, fetch them concurrently.
	var (
		dash       api.Dashboard
		workouts   []api.Workout
		challenges []api.Challenge
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dash, err = client.GetDashboard(gctx, id.ID)
		return err
	})
	g.Go(func() error {
		var err error
		workouts, err = client.ListWorkouts(gctx, id.ID)
		return err
	})
	g.Go(func() error {
		var err error
		challenges, err = client.MyChallenges(gctx, id.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return apiError(err, "loading dashboard")
	}

	printer.Header(fmt.Sprintf("Welcome back, %s", id.Name))
	printer.Info("Workouts: %d assigned, %d completed", dash.TotalWorkouts, dash.CompletedWorkouts)

	if len(workouts) > 0 {
		printer.Header("Your Workouts")
		table := output.NewQuietTable([]string{"ID", "TITLE", "GOAL", "LEVEL"}, printer.IsQuiet())
		for _, w := range workouts {
			table.AddRow([]string{strconv.FormatInt(w.ID, 10), w.Title, w.Goal, w.Level})
		}
		table.Render()
	}

	if len(challenges) > 0 {
		printer.Header("Your Challenges")
		for _, c := range challenges {
			printer.Print("  %s %s", printer.StatusBadge("active"), c.Title)
		}
	}

	printer.PrintHints("home")
	return nil
}

func trainerHome(printer *output.Printer) error {
	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	trainees, err := client.ListTrainees(ctx, id.ID)
	if err != nil {
		return apiError(err, "loading trainees")
	}

	printer.Header(fmt.Sprintf("Welcome back, %s", id.Name))
	if len(trainees) == 0 {
		printer.Info("No trainees linked yet")
		printer.Info("Run 'maxfit trainees available' to find trainees in your city")
		return nil
	}

	table := output.NewQuietTable([]string{"ID", "NAME", "EMAIL", "CITY"}, printer.IsQuiet())
	for _, tr := range trainees {
		table.AddRow([]string{strconv.FormatInt(tr.ID, 10), tr.Name, tr.Email, tr.City})
	}
	table.Render()

	printer.PrintHints("home")
	return nil
}
