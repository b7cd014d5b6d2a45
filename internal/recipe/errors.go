package recipe

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// RecipeError reports an invalid recipe field. Field is a path such as
// commands[2].do[0]; Pos is set for errors found by CUE.
type RecipeError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *RecipeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErr(field, format string, args ...any) *RecipeError {
	return &RecipeError{Field: field, Message: fmt.Sprintf(format, args...)}
}
