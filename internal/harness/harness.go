package harness

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/roach88/swaycmd/internal/ipc"
	"github.com/roach88/swaycmd/internal/recipe"
	"github.com/roach88/swaycmd/internal/store"
	"github.com/roach88/swaycmd/internal/sway"
	"github.com/roach88/swaycmd/internal/testutil"
)

// Harness holds the per-run collaborators of a scenario.
type Harness struct {
	store  *store.Store
	sway   *testutil.FakeSway
	client *ipc.Client
}

// Run executes a scenario and returns the result.
//
// Each run gets a fresh fake sway and in-memory database. Both are
// released before Run returns.
//
// Execution flow:
//  1. Load and compile the recipe
//  2. Record the rendered batch in history
//  3. Send it to the fake sway and record the replies
//  4. Evaluate assertions
func Run(t testing.TB, scenario *Scenario) (*Result, error) {
	t.Helper()

	rec, err := recipe.Load(scenario.Recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	list, err := recipe.Compile(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to compile recipe: %w", err)
	}

	st, err := store.Open(":memory:", store.WithIDGenerator(testutil.NewFixedIDGenerator("")))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	replier := testutil.AcceptAll
	if len(scenario.Reject) > 0 {
		replier = testutil.RejectContaining(scenario.Reject...)
	}
	fake := testutil.NewFakeSway(t, replier)
	defer fake.Close()

	logger := zaptest.NewLogger(t, zaptest.Level(zap.WarnLevel))
	client, err := ipc.New(fake.Socket(), ipc.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create ipc client: %w", err)
	}

	h := &Harness{store: st, sway: fake, client: client}
	ctx := context.Background()

	result := NewResult()
	if err := h.send(ctx, rec.Name, list, result); err != nil {
		return nil, err
	}

	actx := &AssertionContext{Store: st, Ctx: ctx}
	for _, msg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(msg)
	}
	return result, nil
}

// send sends, records and traces one command list. Rejected commands are
// part of the result, not an error.
func (h *Harness) send(ctx context.Context, name string, list *sway.List, result *Result) error {
	payload := list.String()
	result.Payload = payload

	replies, err := h.client.RunCommand(ctx, payload)
	var cerr *ipc.CommandError
	if err != nil && !errors.As(err, &cerr) {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	commands := list.Texts()
	if len(replies) != len(commands) {
		return fmt.Errorf("sway replied %d results for %d commands", len(replies), len(commands))
	}

	stored := make([]store.Reply, len(replies))
	for i, r := range replies {
		result.AddTrace(sway.NormalizeWhitespace(commands[i]), r.Success, r.Error)
		stored[i] = store.Reply{Index: i, Success: r.Success, Error: r.Error}
	}

	batch, err := h.store.RecordBatch(ctx, name, payload)
	if err != nil {
		return fmt.Errorf("failed to record batch: %w", err)
	}
	result.BatchID = batch.ID
	if err := h.store.RecordReplies(ctx, batch.ID, stored); err != nil {
		return fmt.Errorf("failed to record replies: %w", err)
	}
	return nil
}
