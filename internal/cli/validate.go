package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// ValidationResult is the outcome for one recipe file.
type ValidationResult struct {
	Path     string    `json:"path"`
	Recipe   string    `json:"recipe,omitempty"`
	Commands int       `json:"commands"`
	Valid    bool      `json:"valid"`
	Error    *CLIError `json:"error,omitempty"`

	loadErr *LoadError
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <recipe>...",
		Short: "Check recipes without sending them",
		Long: `Load and compile each recipe, reporting every invalid one.

CUE recipes are checked against the recipe schema first; errors carry
the file position of the offending field.

Examples:
  swaycmd validate recipes/*.yaml
  swaycmd validate layout.cue --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *ValidateOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	results := make([]ValidationResult, 0, len(paths))
	invalid := 0
	for _, path := range paths {
		formatter.VerboseLog("Validating %s", path)
		results = append(results, validateOne(path))
		if !results[len(results)-1].Valid {
			invalid++
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(formatter.Writer, "✓ %s: %s, %d command(s)\n", r.Path, r.Recipe, r.Commands)
				continue
			}
			fmt.Fprintf(formatter.Writer, "✗ %s\n  %s: %s\n", r.Path, r.Error.Code, r.loadErr.Error())
		}
	}

	if invalid > 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("%d of %d recipe(s) invalid", invalid, len(paths)))
	}
	return nil
}

func validateOne(path string) ValidationResult {
	rec, list, err := loadRecipe(path)
	if err == nil {
		return ValidationResult{Path: path, Recipe: rec.Name, Commands: list.Len(), Valid: true}
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		loadErr = &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
	}
	return ValidationResult{
		Path: path,
		Error: &CLIError{
			Code:    loadErr.Code,
			Message: loadErr.Message,
			Details: loadErrorDetails(loadErr),
		},
		loadErr: loadErr,
	}
}
