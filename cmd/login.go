package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/gate"
	"github.com/maxfit-project/maxfit/internal/input"
	"github.com/maxfit-project/maxfit/internal/output"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	Long: `Sign in to MaxFit and persist the session for later commands.

The password can be passed with --password or through the MAXFIT_PASSWORD
environment variable.

Examples:
  maxfit login --email ana@example.com --password secret123
  MAXFIT_PASSWORD=secret123 maxfit login --email ana@example.com`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("email", "e", "", "account email")
	loginCmd.Flags().StringP("password", "p", "", "account password (or MAXFIT_PASSWORD)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("MAXFIT_PASSWORD")
	}

	form := input.LoginForm{Email: email, Password: password}
	if err := input.ValidateLogin(form); err != nil {
		return &output.CLIError{
			Summary:  "invalid login form",
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	res := store.Login(ctx, email, password)
	if !res.OK {
		return &output.CLIError{
			Summary:    res.Message,
			Suggestion: "Check your email and password, then try again",
			ExitCode:   output.ExitAuthError,
		}
	}

	id, _ := store.Identity()
	printer.Success("Signed in as %s (%s)", id.Name, roleLabel(id.Role))
	printer.Info("Landing screen: %s", gate.ResolveLandingRoute(store))
	printer.PrintHints("login")
	return nil
}
