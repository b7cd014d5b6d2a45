package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the golden file content of a scenario run.
type Snapshot struct {
	Scenario string       `json:"scenario"`
	BatchID  string       `json:"batch_id"`
	Trace    []TraceEvent `json:"trace"`
}

// RunWithGolden executes a scenario and compares its trace against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(t, scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's trace against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := snapshotJSON(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}

// snapshotJSON renders the snapshot as indented JSON with a trailing
// newline. The trace is whitespace-normalized, so golden files do not
// depend on empty argument positions.
func snapshotJSON(name string, result *Result) ([]byte, error) {
	data, err := json.MarshalIndent(Snapshot{
		Scenario: name,
		BatchID:  result.BatchID,
		Trace:    result.Trace,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
