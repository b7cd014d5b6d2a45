package ipc_test

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/roach88/swaycmd/internal/ipc"
	"github.com/roach88/swaycmd/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClient_RunCommand(t *testing.T) {
	sway := testutil.NewFakeSway(t, nil)
	client, err := ipc.New(sway.Socket())
	require.NoError(t, err)

	results, err := client.RunCommand(context.Background(), "workspace 5;border none")
	require.NoError(t, err)
	assert.Equal(t, []ipc.Result{{Success: true}, {Success: true}}, results)

	got := sway.Received()
	require.Len(t, got, 1)
	assert.Equal(t, testutil.MsgRunCommand, got[0].Type)
	assert.Equal(t, "workspace 5;border none", got[0].Payload)
}

func TestClient_RunCommandReportsFailures(t *testing.T) {
	sway := testutil.NewFakeSway(t, testutil.RejectContaining("bogus"))
	client, err := ipc.New(sway.Socket())
	require.NoError(t, err)

	results, err := client.RunCommand(context.Background(), "reload;bogus 1;kill")
	require.Error(t, err)
	require.Len(t, results, 3)

	var cerr *ipc.CommandError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 3, cerr.Total)
	require.Len(t, cerr.Failures, 1)
	assert.Equal(t, 1, cerr.Failures[0].Index)
	assert.Contains(t, cerr.Failures[0].Error, "bogus 1")
}

func TestClient_GetVersion(t *testing.T) {
	sway := testutil.NewFakeSway(t, nil)
	client, err := ipc.New(sway.Socket())
	require.NoError(t, err)

	v, err := client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testutil.FakeVersion, *v)
}

func TestClient_RunCommandPerSubCommand(t *testing.T) {
	sway := testutil.NewFakeSway(t, testutil.RejectContaining("border"))
	client, err := ipc.New(sway.Socket())
	require.NoError(t, err)

	results, err := client.RunCommand(context.Background(), "[floating]floating disable,border none;kill")
	require.Len(t, results, 3)

	var cerr *ipc.CommandError
	require.ErrorAs(t, err, &cerr)
	require.Len(t, cerr.Failures, 1)
	assert.Equal(t, 1, cerr.Failures[0].Index)
}

func TestClient_SocketFromEnvironment(t *testing.T) {
	t.Setenv(ipc.SocketEnv, "/run/user/1000/sway-ipc.sock")

	client, err := ipc.New("")
	require.NoError(t, err)
	assert.Equal(t, "/run/user/1000/sway-ipc.sock", client.Socket())

	t.Setenv(ipc.SocketEnv, "")
	_, err = ipc.New("")
	assert.ErrorIs(t, err, ipc.ErrNoSocket)
}

func TestClient_DialFailure(t *testing.T) {
	client, err := ipc.New(filepath.Join(t.TempDir(), "missing.sock"))
	require.NoError(t, err)

	_, err = client.RunCommand(context.Background(), "reload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial sway socket")
}

func TestClient_ContextDeadline(t *testing.T) {
	// A server that accepts but never answers.
	dir, err := os.MkdirTemp("", "sway")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	socket := filepath.Join(dir, "silent.sock")

	listener, err := net.Listen("unix", socket)
	require.NoError(t, err)
	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := listener.Accept()
		if err == nil {
			accepted <- conn
		}
		close(accepted)
	}()
	defer func() {
		listener.Close()
		for conn := range accepted {
			conn.Close()
		}
	}()

	client, err := ipc.New(socket)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.RunCommand(ctx, "reload")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_LogsFrames(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sway := testutil.NewFakeSway(t, nil)
	client, err := ipc.New(sway.Socket(), ipc.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = client.RunCommand(context.Background(), "reload")
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("ipc send").Len())
	assert.Equal(t, 1, logs.FilterMessage("ipc reply").Len())
}
