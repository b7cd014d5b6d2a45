package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/swaycmd/internal/store"
	"github.com/roach88/swaycmd/internal/sway"
)

const browserFloat = `workspace 5;[app_id="firefox" floating]border pixel 2,floating enable;exec foot;bindsym Mod4+Shift+q kill`

func TestRender_Text(t *testing.T) {
	out, err := execute(t, "text", NewRenderCommand, fixture("browser-float.yaml"))
	require.NoError(t, err)
	assert.Equal(t, browserFloat, sway.NormalizeWhitespace(out))
}

func TestRender_Lines(t *testing.T) {
	out, err := execute(t, "text", NewRenderCommand, fixture("browser-float.yaml"), "--lines")
	require.NoError(t, err)
	assert.Equal(t,
		"workspace 5\n"+
			`[app_id="firefox" floating]border pixel 2,floating enable`+"\n"+
			"exec foot\n"+
			"bindsym Mod4+Shift+q kill\n",
		out)
}

func TestRender_JSON(t *testing.T) {
	out, err := execute(t, "json", NewRenderCommand, fixture("browser-float.yaml"))
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   RenderResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "browser-float", resp.Data.Recipe)
	assert.Len(t, resp.Data.Commands, 4)
	assert.Equal(t, store.Digest(resp.Data.Payload), resp.Data.Digest)
	assert.Equal(t, store.Digest(browserFloat), resp.Data.Digest)
}

func TestRender_OutputFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "payload.txt")

	_, err := execute(t, "text", NewRenderCommand, fixture("browser-float.yaml"), "-o", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, browserFloat, sway.NormalizeWhitespace(string(data)))
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		recipe   string
		wantCode string
	}{
		{"missing file", "nope.yaml", ErrCodeNotFound},
		{"unsupported extension", "recipe.toml", ErrCodeUnsupported},
		{"two keys in a step", "bad-step.yaml", ErrCodeStep},
		{"cue schema violation", "bad-border.cue", ErrCodeStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "json", NewRenderCommand, fixture(tt.recipe))
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestMapFieldToErrorCode(t *testing.T) {
	tests := map[string]string{
		"name":                         ErrCodeRecipeName,
		"commands":                     ErrCodeRecipeCommands,
		"commands[2]":                  ErrCodeRecipeCommands,
		"commands[0].criteria[1]":      ErrCodeCriterion,
		"commands[0].do[0].floating":   ErrCodeStep,
		"commands[3].for_window.do[0]": ErrCodeStep,
		"commands.0.do.0.border.style": ErrCodeStep,
		"commands[1].for_window":       ErrCodeRecipeCommands,
		"cue":                          ErrCodeGeneric,
	}
	for field, want := range tests {
		assert.Equal(t, want, MapFieldToErrorCode(field), field)
	}
}
