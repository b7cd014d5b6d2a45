package recipe

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource string

// LoadCUE reads a CUE recipe and checks it against the #Recipe schema.
func LoadCUE(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	return ParseCUE(path, data)
}

// ParseCUE parses a CUE recipe. The document's top level is the recipe.
func ParseCUE(filename string, data []byte) (*Recipe, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling recipe schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v = schema.LookupPath(cue.ParsePath("#Recipe")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var r Recipe
	if err := v.Decode(&r); err != nil {
		return nil, formatCUEError(err)
	}
	if err := validateRecipe(&r); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}
	return &r, nil
}

// formatCUEError keeps the first error and its source position.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	field := "cue"
	if path := first.Path(); len(path) > 0 {
		field = strings.Join(path, ".")
	}
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &RecipeError{
			Field:   field,
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return err
}
