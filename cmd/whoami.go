package cmd

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/api"
	"github.com/maxfit-project/maxfit/internal/output"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	Long: `Show who is currently signed in, including the role and, when the
bearer token is a JWT, its expiry.

Examples:
  maxfit whoami
  maxfit whoami --json`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		result := map[string]any{
			"id":    id.ID,
			"name":  id.Name,
			"email": id.Email,
			"role":  string(id.Role),
			"city":  id.City,
		}
		if info, err := api.InspectToken(store.Token()); err == nil && !info.ExpiresAt.IsZero() {
			result["token_expires_at"] = info.ExpiresAt.Format(time.RFC3339)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer.Header("Signed In")
	table := output.NewQuietTable([]string{"FIELD", "VALUE"}, printer.IsQuiet())
	table.AddRow([]string{"name", id.Name})
	table.AddRow([]string{"email", id.Email})
	table.AddRow([]string{"role", roleLabel(id.Role)})
	table.AddRow([]string{"city", id.City})
	table.Render()

	// Expiry is informational only, opaque tokens simply show nothing.
	if info, err := api.InspectToken(store.Token()); err == nil && !info.ExpiresAt.IsZero() {
		if time.Now().After(info.ExpiresAt) {
			printer.Warning("Token expired at %s, the next backend call will sign you out", info.ExpiresAt.Format(time.RFC3339))
		} else {
			printer.Info("Token valid until %s", info.ExpiresAt.Format(time.RFC3339))
		}
	}

	printer.PrintHints("whoami")
	return nil
}
