package ipc

import (
	"fmt"
	"strings"
)

// Failure is one command sway rejected.
type Failure struct {
	Index int
	Result
}

// CommandError reports the commands of a RUN_COMMAND payload that sway
// rejected. Commands before and after a failure may still have run.
type CommandError struct {
	Total    int
	Failures []Failure
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d commands failed", len(e.Failures), e.Total)
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "; command %d: %s", f.Index, f.Error)
	}
	return b.String()
}

func newCommandError(results []Result) *CommandError {
	var failures []Failure
	for i, r := range results {
		if !r.Success {
			failures = append(failures, Failure{Index: i, Result: r})
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &CommandError{Total: len(results), Failures: failures}
}
