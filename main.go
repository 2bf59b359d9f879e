// Package main is the entry point for the maxfit CLI
package main

import (
	"errors"
	"os"

	"github.com/maxfit-project/maxfit/cmd"
	"github.com/maxfit-project/maxfit/internal/output"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		var cliErr *output.CLIError
		if errors.As(err, &cliErr) {
			printer := output.NewPrinter(output.ResolveColors(output.ColorAuto, true))
			printer.FormatError(cliErr)
			if cliErr.ExitCode > 0 {
				os.Exit(cliErr.ExitCode)
			}
			os.Exit(1)
		}
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
