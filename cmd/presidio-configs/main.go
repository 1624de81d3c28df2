// Package main is the entry point for the presidio-configs CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/presidio-build/presidio-configs/internal/cmd"
	oerrors "github.com/presidio-build/presidio-configs/internal/errors"
	"github.com/presidio-build/presidio-configs/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Flag parsing and other cobra errors carry no ExitError and are
		// always printed.
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			printError(err)
		}

		code := oerrors.ExitCodeFromError(err)
		output.Debug("exiting", "code", code, "status", oerrors.ExitCodeName(code))
		os.Exit(code)
	}
}

// printError writes err to stderr. DetailError renders its own "Error:" header.
func printError(err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		fmt.Fprint(os.Stderr, detail.Error())
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
