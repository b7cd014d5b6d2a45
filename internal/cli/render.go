package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/swaycmd/internal/store"
	"github.com/roach88/swaycmd/internal/sway"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output string // output file path
	Lines  bool   // one normalized command per line
}

// RenderResult is the rendered form of a recipe.
type RenderResult struct {
	Recipe   string   `json:"recipe"`
	Payload  string   `json:"payload"`
	Commands []string `json:"commands"`
	Digest   string   `json:"digest"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <recipe>",
		Short: "Print the command list of a recipe",
		Long: `Render a YAML or CUE recipe to the text sway receives over IPC.

The payload is printed exactly as it would be sent, including the empty
positions of omitted optional arguments. Use --lines for one
whitespace-normalized command per line.

Examples:
  swaycmd render browser-float.yaml
  swaycmd render layout.cue --lines
  swaycmd render layout.cue -o layout.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the payload to a file")
	cmd.Flags().BoolVar(&opts.Lines, "lines", false, "print one normalized command per line")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	rec, list, err := loadRecipe(path)
	if err != nil {
		return failLoad(formatter, err)
	}
	formatter.VerboseLog("Rendered %s: %d command(s)", rec.Name, list.Len())

	result := RenderResult{
		Recipe:   rec.Name,
		Payload:  list.String(),
		Commands: make([]string, 0, list.Len()),
	}
	for _, c := range list.Commands() {
		result.Commands = append(result.Commands, sway.NormalizeWhitespace(sway.Render(c)))
	}
	result.Digest = store.Digest(result.Payload)

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, list.Bytes(), 0o644); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
		}
		formatter.VerboseLog("Wrote payload to %s", opts.Output)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	if opts.Lines {
		for _, c := range result.Commands {
			fmt.Fprintln(formatter.Writer, c)
		}
		return nil
	}
	fmt.Fprintln(formatter.Writer, result.Payload)
	return nil
}

// failLoad reports a recipe load error as a command error.
func failLoad(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}
	return formatter.Fail(ExitCommandError, loadErr.Code, loadErr.Error(), loadErrorDetails(loadErr))
}
