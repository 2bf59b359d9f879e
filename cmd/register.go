package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/input"
	"github.com/maxfit-project/maxfit/internal/output"
	"github.com/maxfit-project/maxfit/internal/session"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a trainee or trainer account",
	Long: `Create a MaxFit account. Registration does not sign you in; run
'maxfit login' afterwards.

Trainee accounts take physical metrics and a goal, trainer accounts a CREF
registration number and a specialty.

Examples:
  maxfit register --role aluno --name Ana --email ana@example.com \
    --password secret123 --city Recife --weight 72.4 --height 168 \
    --goal PERDER_PESO

  maxfit register --role personal --name Bia --email bia@example.com \
    --password secret123 --city Recife --cref 12345-G/PE --specialty hipertrofia`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("role", "", "account role (aluno or personal)")
	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().StringP("email", "e", "", "account email")
	registerCmd.Flags().StringP("password", "p", "", "account password")
	registerCmd.Flags().String("city", "", "home city")
	registerCmd.Flags().Float64("weight", 0, "weight in kg (trainee)")
	registerCmd.Flags().Float64("height", 0, "height in cm (trainee)")
	registerCmd.Flags().String("goal", "", "training goal (trainee)")
	registerCmd.Flags().String("cref", "", "CREF registration number (trainer)")
	registerCmd.Flags().String("specialty", "", "specialty (trainer)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	roleFlag, _ := cmd.Flags().GetString("role")
	role := session.ParseRole(roleFlag)

	form := input.RegisterForm{}
	form.Name, _ = cmd.Flags().GetString("name")
	form.Email, _ = cmd.Flags().GetString("email")
	form.Password, _ = cmd.Flags().GetString("password")
	form.City, _ = cmd.Flags().GetString("city")
	form.WeightKG, _ = cmd.Flags().GetFloat64("weight")
	form.HeightCM, _ = cmd.Flags().GetFloat64("height")
	form.Goal, _ = cmd.Flags().GetString("goal")
	form.CREF, _ = cmd.Flags().GetString("cref")
	form.Specialty, _ = cmd.Flags().GetString("specialty")

	if err := input.ValidateRegistration(role, form); err != nil {
		return &output.CLIError{
			Summary:  "invalid registration form",
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	res := store.Register(ctx, role, session.Registration{
		Name:      form.Name,
		Email:     form.Email,
		Password:  form.Password,
		City:      form.City,
		WeightKG:  form.WeightKG,
		HeightCM:  form.HeightCM,
		Goal:      form.Goal,
		CREF:      form.CREF,
		Specialty: form.Specialty,
	})
	if !res.OK {
		return &output.CLIError{
			Summary:  res.Message,
			ExitCode: output.ExitAPIError,
		}
	}

	printer.Success("Account created, you can now sign in")
	printer.PrintHints("register")
	return nil
}
