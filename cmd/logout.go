package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	if !store.IsAuthenticated() {
		printer.Info("Already signed out")
		return nil
	}

	store.Logout()
	printer.Success("Signed out")
	printer.PrintHints("logout")
	return nil
}
