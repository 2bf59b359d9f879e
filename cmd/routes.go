package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/gate"
	"github.com/maxfit-project/maxfit/internal/output"
	"github.com/maxfit-project/maxfit/internal/session"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List all screens and their access rules",
	Long: `List every screen of the platform with the command that renders it and
who is allowed to open it.

Examples:
  maxfit routes                # List all screens
  maxfit routes --protected    # Only screens behind the access gate
  maxfit routes --json         # Output as JSON`,
	RunE: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)

	routesCmd.Flags().Bool("protected", false, "only list gated screens")
	routesCmd.Flags().Bool("json", false, "output as JSON")
}

func runRoutes(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	protectedOnly, _ := cmd.Flags().GetBool("protected")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	routes := routeTable.All()
	if protectedOnly {
		routes = routeTable.Protected()
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(routes)
	}

	printer.Header("Screens")
	table := output.NewQuietTable([]string{"PATH", "COMMAND", "ACCESS", "DESCRIPTION"}, printer.IsQuiet())
	for _, r := range routes {
		table.AddRow([]string{r.Path, r.Command, accessLabel(r), r.Description})
	}
	table.Render()
	return nil
}

func accessLabel(r *gate.Route) string {
	if r.Public {
		return "public"
	}
	if r.RequiredRole == session.RoleNone {
		return "any signed-in"
	}
	return roleLabel(r.RequiredRole)
}
