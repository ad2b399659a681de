package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/waypoint/internal/cli"
	"github.com/arthur-debert/waypoint/pkg/errors"
	"github.com/arthur-debert/waypoint/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err, ui.SupportsColor(os.Stderr)))

		// Usage mistakes get the help text as well
		switch errors.GetErrorCode(err) {
		case errors.ErrMissingArgument, errors.ErrInvalidInput:
			fmt.Fprintln(os.Stderr)
			rootCmd.SetOut(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(1)
	}
}
