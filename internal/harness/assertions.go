package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/swaycmd/internal/store"
	"github.com/roach88/swaycmd/internal/sway"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, event := range e.Trace {
			status := "ok"
			if !event.Success {
				status = "failed"
			}
			fmt.Fprintf(&buf, "  [%d] %s (%s)\n", event.Seq, event.Command, status)
		}
	}

	return buf.String()
}

// find returns the position of the first event whose command matches.
func find(trace []TraceEvent, command string) int {
	want := sway.NormalizeWhitespace(command)
	for i, event := range trace {
		if event.Command == want {
			return i
		}
	}
	return -1
}

func assertSentContains(trace []TraceEvent, assertion Assertion) error {
	if find(trace, assertion.Command) >= 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertSentContains,
		Expected: fmt.Sprintf("command %q", assertion.Command),
		Actual:   "not sent",
		Trace:    trace,
	}
}

// assertSentOrder checks that commands were sent in the given order.
// Commands don't need to be consecutive.
func assertSentOrder(trace []TraceEvent, assertion Assertion) error {
	positions := make([]int, len(assertion.Commands))
	for i, command := range assertion.Commands {
		positions[i] = find(trace, command)
		if positions[i] < 0 {
			return &AssertionError{
				Type:     AssertSentOrder,
				Expected: fmt.Sprintf("all commands sent: %q", assertion.Commands),
				Actual:   fmt.Sprintf("missing command: %q", command),
				Trace:    trace,
			}
		}
	}

	for i := 1; i < len(positions); i++ {
		if positions[i-1] >= positions[i] {
			return &AssertionError{
				Type:     AssertSentOrder,
				Expected: fmt.Sprintf("commands in order: %q", assertion.Commands),
				Actual: fmt.Sprintf("%q (pos %d) should be before %q (pos %d)",
					assertion.Commands[i-1], positions[i-1], assertion.Commands[i], positions[i]),
				Trace: trace,
			}
		}
	}
	return nil
}

func assertSentCount(trace []TraceEvent, assertion Assertion) error {
	if len(trace) == assertion.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertSentCount,
		Expected: fmt.Sprintf("%d commands", assertion.Count),
		Actual:   fmt.Sprintf("%d commands", len(trace)),
		Trace:    trace,
	}
}

func assertCommandFailed(trace []TraceEvent, assertion Assertion) error {
	i := find(trace, assertion.Command)
	switch {
	case i < 0:
		return &AssertionError{
			Type:     AssertCommandFailed,
			Expected: fmt.Sprintf("command %q rejected", assertion.Command),
			Actual:   "not sent",
			Trace:    trace,
		}
	case trace[i].Success:
		return &AssertionError{
			Type:     AssertCommandFailed,
			Expected: fmt.Sprintf("command %q rejected", assertion.Command),
			Actual:   "succeeded",
			Trace:    trace,
		}
	}
	return nil
}

// assertHistory checks that the batch was recorded with its digest and
// the expected number of replies.
func assertHistory(ctx context.Context, st *store.Store, result *Result, assertion Assertion) error {
	batch, err := st.GetBatch(ctx, result.BatchID)
	if err != nil {
		return &AssertionError{
			Type:     AssertHistory,
			Expected: fmt.Sprintf("batch %s recorded", result.BatchID),
			Actual:   err.Error(),
		}
	}

	if batch.Digest != store.Digest(result.Payload) {
		return &AssertionError{
			Type:     AssertHistory,
			Expected: fmt.Sprintf("digest %s", store.Digest(result.Payload)),
			Actual:   fmt.Sprintf("digest %s", batch.Digest),
		}
	}

	if len(batch.Replies) != assertion.Count {
		return &AssertionError{
			Type:     AssertHistory,
			Expected: fmt.Sprintf("%d replies recorded", assertion.Count),
			Actual:   fmt.Sprintf("%d replies recorded", len(batch.Replies)),
		}
	}
	return nil
}

// AssertionContext provides database access for history assertions.
type AssertionContext struct {
	Store *store.Store
	Ctx   context.Context
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertSentContains:
			err = assertSentContains(result.Trace, assertion)
		case AssertSentOrder:
			err = assertSentOrder(result.Trace, assertion)
		case AssertSentCount:
			err = assertSentCount(result.Trace, assertion)
		case AssertCommandFailed:
			err = assertCommandFailed(result.Trace, assertion)
		case AssertHistory:
			if actx == nil || actx.Store == nil {
				err = fmt.Errorf("assertion[%d]: history requires database context", i)
			} else {
				err = assertHistory(actx.Ctx, actx.Store, result, assertion)
			}
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
