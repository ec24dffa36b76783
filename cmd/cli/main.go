package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rev-tools/salespulse/pkg/runtime/terminal"
)

func main() {
	// Keep stdout clean for report output; diagnostics go to stderr.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
		Logger: logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
