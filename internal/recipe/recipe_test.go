package recipe

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/swaycmd/internal/sway"
)

func TestLoad_YAMLAndCUEAgree(t *testing.T) {
	fromYAML, err := Load(filepath.Join("testdata", "browser-float.yaml"))
	require.NoError(t, err)
	fromCUE, err := Load(filepath.Join("testdata", "browser-float.cue"))
	require.NoError(t, err)

	if diff := cmp.Diff(fromYAML, fromCUE); diff != "" {
		t.Errorf("YAML and CUE recipes differ (-yaml +cue):\n%s", diff)
	}
	assert.Equal(t, "browser-float", fromYAML.Name)
	assert.Len(t, fromYAML.Commands, 4)
}

func TestCompile_BrowserFloat(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "browser-float.yaml"))
	require.NoError(t, err)

	list, err := Compile(r)
	require.NoError(t, err)

	assert.Equal(t,
		`workspace 5;[app_id="firefox" floating]border pixel 2,floating enable;exec foot;bindsym Mod4+Shift+q kill`,
		sway.NormalizeWhitespace(list.String()))
	assert.Equal(t, list.Rebuild(), list.String())
}

func TestCompile_Layout(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "layout.yaml"))
	require.NoError(t, err)

	list, err := Compile(r)
	require.NoError(t, err)

	want := []string{
		"set $mod Mod4",
		"workspace number 3",
		`for_window [window_role="pop-up"] floating enable,move position center`,
		`[con_id="__focused__"]layout toggle split tabbed,resize set width 50 ppt,focus next sibling`,
		"bindsym --release --no-repeat Print nop screenshot",
		"include ~/.config/sway/local",
	}
	got := make([]string, 0, list.Len())
	for _, c := range list.Commands() {
		got = append(got, sway.NormalizeWhitespace(sway.Render(c)))
	}
	assert.Equal(t, want, got)
}

func TestParseYAML_UnknownField(t *testing.T) {
	_, err := ParseYAML([]byte("name: x\ncommand:\n  - raw: reload\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command")
}

func TestParseYAML_RequiredFields(t *testing.T) {
	_, err := ParseYAML([]byte("commands:\n  - raw: reload\n"))
	require.Error(t, err)

	var re *RecipeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "name", re.Field)

	_, err = ParseYAML([]byte("name: empty\n"))
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "commands", re.Field)
}

func TestParseCUE_SchemaViolationHasPosition(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad-border.cue"))
	require.Error(t, err)

	var re *RecipeError
	require.True(t, errors.As(err, &re), "got %T: %v", err, err)
	assert.True(t, re.Pos.IsValid())
	assert.Contains(t, err.Error(), "border")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("recipe.toml")
	require.ErrorIs(t, err, ErrUnsupportedExtension)
	assert.Contains(t, err.Error(), `".toml"`)
}

func TestCompile_FieldErrors(t *testing.T) {
	testCases := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "two keys in one entry",
			yaml:  "name: x\ncommands:\n  - raw: reload\n    exec: foot\n",
			field: "commands[0]",
		},
		{
			name:  "criteria without do",
			yaml:  "name: x\ncommands:\n  - raw: reload\n    criteria: [{app_id: foot}]\n",
			field: "commands[0].criteria",
		},
		{
			name:  "empty step",
			yaml:  "name: x\ncommands:\n  - do: [{}]\n",
			field: "commands[0].do[0]",
		},
		{
			name:  "two keys in one step",
			yaml:  "name: x\ncommands:\n  - do: [{kill: true, exit: true}]\n",
			field: "commands[0].do[0]",
		},
		{
			name:  "unknown floating state",
			yaml:  "name: x\ncommands:\n  - raw: reload\n  - do: [{floating: on}]\n",
			field: "commands[1].do[0].floating",
		},
		{
			name:  "false flag step",
			yaml:  "name: x\ncommands:\n  - do: [{kill: false}]\n",
			field: "commands[0].do[0].kill",
		},
		{
			name:  "bad con id",
			yaml:  "name: x\ncommands:\n  - criteria: [{con_id: abc}]\n    do: [{kill: true}]\n",
			field: "commands[0].criteria[0].con_id",
		},
		{
			name:  "unknown modifier",
			yaml:  "name: x\ncommands:\n  - bindsym: {modifiers: [hyper], key: a, do: [{exit: true}]}\n",
			field: "commands[0].bindsym.modifiers[0]",
		},
		{
			name:  "move needs one target",
			yaml:  "name: x\ncommands:\n  - do: [{move: {mark: a, scratchpad: true}}]\n",
			field: "commands[0].do[0].move",
		},
		{
			name:  "resize set without size",
			yaml:  "name: x\ncommands:\n  - do: [{resize: {mode: set}}]\n",
			field: "commands[0].do[0].resize",
		},
		{
			name:  "for_window without criteria",
			yaml:  "name: x\ncommands:\n  - for_window: {criteria: [], do: [{kill: true}]}\n",
			field: "commands[0].for_window.criteria",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ParseYAML([]byte(tc.yaml))
			require.NoError(t, err)

			_, err = Compile(r)
			require.Error(t, err)

			var re *RecipeError
			require.True(t, errors.As(err, &re), "got %T: %v", err, err)
			assert.Equal(t, tc.field, re.Field)
		})
	}
}

func TestCompile_StepsRenderUnchecked(t *testing.T) {
	r, err := ParseYAML([]byte(`name: x
commands:
  - criteria: [{title: "(unclosed"}]
    do:
      - mark: ""
      - opacity: {value: 7}
      - move: {direction: left, px: -5}
`))
	require.NoError(t, err)

	list, err := Compile(r)
	require.NoError(t, err)
	assert.Equal(t, `[title="(unclosed"]mark ,opacity set 7,move left -5 px`,
		sway.NormalizeWhitespace(list.String()))
}
