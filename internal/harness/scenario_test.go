package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ResolvesRecipe(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "browser_float.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "browser_float", s.Name)
	assert.Equal(t, filepath.Join("testdata", "recipes", "browser-float.yaml"), s.Recipe)
	assert.Empty(t, s.Reject)
	require.Len(t, s.Assertions, 4)
	assert.Equal(t, AssertSentCount, s.Assertions[0].Type)
	assert.Equal(t, 5, s.Assertions[0].Count)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "scenarios", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_Errors(t *testing.T) {
	dir := t.TempDir()
	recipePath := filepath.Join(dir, "r.yaml")
	require.NoError(t, os.WriteFile(recipePath, []byte("name: r\ncommands:\n  - exec: foot\n"), 0o644))

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown field",
			yaml: "name: x\ndescription: d\nrecipe: r.yaml\nassertion: []\n",
			want: "field assertion not found",
		},
		{
			name: "missing name",
			yaml: "description: d\nrecipe: r.yaml\nassertions: [{type: sent_count}]\n",
			want: "name is required",
		},
		{
			name: "missing description",
			yaml: "name: x\nrecipe: r.yaml\nassertions: [{type: sent_count}]\n",
			want: "description is required",
		},
		{
			name: "missing recipe",
			yaml: "name: x\ndescription: d\nassertions: [{type: sent_count}]\n",
			want: "recipe is required",
		},
		{
			name: "recipe not found",
			yaml: "name: x\ndescription: d\nrecipe: gone.yaml\nassertions: [{type: sent_count}]\n",
			want: "recipe file not found",
		},
		{
			name: "no assertions",
			yaml: "name: x\ndescription: d\nrecipe: r.yaml\n",
			want: "assertions list is required",
		},
		{
			name: "unknown assertion",
			yaml: "name: x\ndescription: d\nrecipe: r.yaml\nassertions: [{type: final_state}]\n",
			want: `unknown assertion type "final_state"`,
		},
		{
			name: "contains without command",
			yaml: "name: x\ndescription: d\nrecipe: r.yaml\nassertions: [{type: sent_contains}]\n",
			want: "command is required for sent_contains",
		},
		{
			name: "order without commands",
			yaml: "name: x\ndescription: d\nrecipe: r.yaml\nassertions: [{type: sent_order}]\n",
			want: "commands list is required",
		},
		{
			name: "negative count",
			yaml: "name: x\ndescription: d\nrecipe: r.yaml\nassertions: [{type: history, count: -1}]\n",
			want: "count must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
