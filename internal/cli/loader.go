package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"cuelang.org/go/cue/token"

	"github.com/roach88/swaycmd/internal/recipe"
	"github.com/roach88/swaycmd/internal/sway"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Recipe file not found
	ErrCodeUnsupported = "E003" // Unsupported recipe extension
	ErrCodeParseFailed = "E004" // YAML or CUE parse/schema error
	ErrCodeWriteFailed = "E005" // File write error

	// Recipe content errors
	ErrCodeRecipeName     = "E101" // Missing name
	ErrCodeRecipeCommands = "E102" // Missing or invalid command entry
	ErrCodeCriterion      = "E103" // Invalid criterion
	ErrCodeStep           = "E104" // Invalid do step

	// Transport errors
	ErrCodeNoSocket = "E201" // No sway socket configured
	ErrCodeIPC      = "E202" // IPC round trip failed
	ErrCodeRejected = "E203" // sway rejected a command

	ErrCodeDatabase = "E301" // History database error
	ErrCodeWatch    = "E401" // File watcher error
)

// LoadError is a recipe that could not be loaded or compiled.
type LoadError struct {
	Code    string
	Message string
	Field   string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// loadRecipe loads and compiles a recipe file. Errors are *LoadError.
func loadRecipe(path string) (*recipe.Recipe, *sway.List, error) {
	rec, err := recipe.Load(path)
	if err != nil {
		return nil, nil, convertRecipeError(path, err)
	}
	list, err := recipe.Compile(rec)
	if err != nil {
		return nil, nil, convertRecipeError(path, err)
	}
	return rec, list, nil
}

// convertRecipeError converts a recipe error to a LoadError with position info.
func convertRecipeError(path string, err error) *LoadError {
	var recipeErr *recipe.RecipeError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("recipe not found: %s", path)}
	case errors.Is(err, recipe.ErrUnsupportedExtension):
		return &LoadError{Code: ErrCodeUnsupported, Message: err.Error()}
	case errors.As(err, &recipeErr):
		code := MapFieldToErrorCode(recipeErr.Field)
		if code == ErrCodeGeneric && recipeErr.Pos.IsValid() {
			code = ErrCodeParseFailed
		}
		return &LoadError{
			Code:    code,
			Message: fmt.Sprintf("%s: %s", recipeErr.Field, recipeErr.Message),
			Field:   recipeErr.Field,
			Pos:     recipeErr.Pos,
		}
	default:
		return &LoadError{Code: ErrCodeParseFailed, Message: err.Error()}
	}
}

// MapFieldToErrorCode maps a recipe field path such as commands[1].do[0]
// or commands.1.criteria.0 to an error code.
func MapFieldToErrorCode(field string) string {
	switch field {
	case "name":
		return ErrCodeRecipeName
	case "commands":
		return ErrCodeRecipeCommands
	}

	code := ErrCodeGeneric
	for _, seg := range strings.Split(field, ".") {
		if i := strings.IndexByte(seg, '['); i >= 0 {
			seg = seg[:i]
		}
		switch seg {
		case "commands":
			code = ErrCodeRecipeCommands
		case "criteria":
			code = ErrCodeCriterion
		case "do":
			code = ErrCodeStep
		}
	}
	return code
}

// loadErrorDetails returns the JSON details of a LoadError.
func loadErrorDetails(err *LoadError) interface{} {
	details := map[string]interface{}{}
	if err.Field != "" {
		details["field"] = err.Field
	}
	if err.Pos.IsValid() {
		details["file"] = err.Pos.Filename()
		details["line"] = err.Pos.Line()
		details["column"] = err.Pos.Column()
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
