package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roach88/swaycmd/internal/ipc"
	"github.com/roach88/swaycmd/internal/store"
	"github.com/roach88/swaycmd/internal/sway"
	"github.com/roach88/swaycmd/internal/testutil"
)

type sendResponse struct {
	Status  string     `json:"status"`
	BatchID string     `json:"batch_id"`
	Data    SendResult `json:"data"`
}

func TestSend_Recipe(t *testing.T) {
	fake := testutil.NewFakeSway(t, nil)
	db := filepath.Join(t.TempDir(), "history.db")

	out, err := execute(t, "json", NewSendCommand, fixture("browser-float.yaml"), "--socket", fake.Socket(), "--db", db)
	require.NoError(t, err)

	var resp sendResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.BatchID)
	assert.Equal(t, resp.BatchID, resp.Data.BatchID)
	assert.Equal(t, "browser-float", resp.Data.Recipe)
	require.Len(t, resp.Data.Commands, 5)
	assert.Equal(t, `[app_id="firefox" floating]border pixel 2`, resp.Data.Commands[1].Command)
	assert.Equal(t, `[app_id="firefox" floating]floating enable`, resp.Data.Commands[2].Command)
	assert.Equal(t, "exec foot", resp.Data.Commands[3].Command)

	received := fake.Received()
	require.Len(t, received, 1)
	assert.Equal(t, testutil.MsgRunCommand, received[0].Type)
	assert.Equal(t, browserFloat, sway.NormalizeWhitespace(received[0].Payload))

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	batch, err := st.GetBatch(context.Background(), resp.BatchID)
	require.NoError(t, err)
	assert.Equal(t, received[0].Payload, batch.Payload)
	assert.Len(t, batch.Replies, 5)
}

func TestSend_Raw(t *testing.T) {
	fake := testutil.NewFakeSway(t, nil)
	t.Setenv(ipc.SocketEnv, fake.Socket())
	t.Setenv(DatabaseEnv, "")

	out, err := execute(t, "text", NewSendCommand, "--raw", "workspace 5; exec foot")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ workspace 5\n")
	assert.Contains(t, out, "✓ exec foot\n")
	assert.Contains(t, out, "Sent 2 command(s), 0 failed\n")
	assert.NotContains(t, out, "batch")
	assert.Equal(t, "workspace 5; exec foot", fake.Received()[0].Payload)
}

func TestSend_RejectedCommandExitsOne(t *testing.T) {
	fake := testutil.NewFakeSway(t, testutil.RejectContaining("bogus"))
	t.Setenv(DatabaseEnv, filepath.Join(t.TempDir(), "history.db"))

	out, err := execute(t, "text", NewSendCommand, fixture("launchers.yaml"), "--socket", fake.Socket())
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 of 2 commands failed")

	assert.Contains(t, out, "✓ exec waybar\n")
	assert.Contains(t, out, "✗ exec bogus-launcher: Unknown/invalid command 'exec bogus-launcher'\n")
	assert.Contains(t, out, "Sent 2 command(s), 1 failed (batch ")
}

func TestSend_LabelsEachSubCommand(t *testing.T) {
	fake := testutil.NewFakeSway(t, testutil.RejectContaining("border"))
	t.Setenv(DatabaseEnv, "")

	out, err := execute(t, "text", NewSendCommand, "--raw", "[floating]floating disable,border none;kill", "--socket", fake.Socket())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 commands failed")

	// Raw text split on ';' does not line up with the replies, so the
	// results are unlabelled rather than mislabelled.
	assert.NotContains(t, out, "kill")
	assert.Contains(t, out, "✓ #0\n")
	assert.Contains(t, out, "✗ #1: Unknown/invalid command '[floating]border none'\n")
	assert.Contains(t, out, "Sent 3 command(s), 1 failed\n")
}

func TestSender_UnreachableSwayRecordsNothing(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	s, err := newSender(filepath.Join(t.TempDir(), "missing.sock"), db, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Send(context.Background(), "r", "kill", []string{"kill"})
	require.Error(t, err)

	batches, err := s.store.ListBatches(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestSend_Errors(t *testing.T) {
	t.Setenv(ipc.SocketEnv, "")
	t.Setenv(DatabaseEnv, "")

	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"no input", nil, ErrCodeGeneric},
		{"recipe and raw", []string{fixture("browser-float.yaml"), "--raw", "kill"}, ErrCodeGeneric},
		{"invalid recipe", []string{fixture("bad-step.yaml")}, ErrCodeStep},
		{"no socket", []string{"--raw", "kill"}, ErrCodeNoSocket},
		{"dial failure", []string{"--raw", "kill", "--socket", filepath.Join(t.TempDir(), "missing.sock")}, ErrCodeIPC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "text", NewSendCommand, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.True(t, strings.HasPrefix(out, "Error ["+tt.wantCode+"]"), "output: %s", out)
		})
	}
}
