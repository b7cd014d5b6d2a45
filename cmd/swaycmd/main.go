package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/roach88/swaycmd/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		// Subcommands print their own errors; flag and argument errors
		// from cobra still need reporting.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
