package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/api"
	"github.com/maxfit-project/maxfit/internal/output"
)

var supportCmd = &cobra.Command{
	Use:   "support",
	Short: "Find support professionals in your city",
}

var supportPsychologistsCmd = &cobra.Command{
	Use:   "psychologists",
	Short: "List psychologists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSupport(cmd, client.ListPsychologists, "Psychologists")
	},
}

var supportNutritionistsCmd = &cobra.Command{
	Use:   "nutritionists",
	Short: "List nutritionists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSupport(cmd, client.ListNutritionists, "Nutritionists")
	},
}

func init() {
	rootCmd.AddCommand(supportCmd)
	supportCmd.AddCommand(supportPsychologistsCmd, supportNutritionistsCmd)

	supportCmd.PersistentFlags().String("city", "", "city to search (default: your own)")
}

func runSupport(cmd *cobra.Command, list func(context.Context, string) ([]api.Professional, error), title string) error {
	if err := guardRoute("/suporte"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	city, _ := cmd.Flags().GetString("city")
	if city == "" {
		city = id.City
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	professionals, err := list(ctx, city)
	if err != nil {
		return apiError(err, "listing professionals")
	}

	if len(professionals) == 0 {
		printer.Info("No professionals found in %s", city)
		return nil
	}

	printer.Header(title + " in " + city)
	table := output.NewQuietTable([]string{"NAME", "PHONE", "EMAIL", "SPECIALTY"}, printer.IsQuiet())
	for _, p := range professionals {
		table.AddRow([]string{p.Name, p.Phone, p.Email, p.Specialty})
	}
	table.Render()
	return nil
}
