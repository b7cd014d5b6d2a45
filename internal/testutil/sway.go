package testutil

import (
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/roach88/swaycmd/internal/ipc"
)

// Received is one message the fake server got.
type Received struct {
	Type    MessageType
	Payload string
}

// Replier computes the RUN_COMMAND reply for the commands of one payload.
type Replier func(commands []string) []ipc.Result

// FakeSway is an in-process sway IPC server on a temporary UNIX socket.
//
// RUN_COMMAND payloads are split the way sway runs them (see
// SplitCommands) and answered by the Replier, which by default reports
// success for every command. GET_VERSION returns a
// fixed version.
type FakeSway struct {
	socket   string
	listener net.Listener
	replier  Replier

	mu       sync.Mutex
	received []Received
	conns    map[net.Conn]struct{}
	closed   bool

	wg sync.WaitGroup
}

// FakeVersion is the GET_VERSION reply of every FakeSway.
var FakeVersion = ipc.Version{
	Major:         1,
	Minor:         10,
	Patch:         0,
	HumanReadable: "1.10 (fake)",
}

// NewFakeSway starts a server and stops it when the test ends. A nil
// replier accepts every command.
func NewFakeSway(t testing.TB, replier Replier) *FakeSway {
	t.Helper()

	// os.MkdirTemp keeps the path under the UNIX socket length limit, which
	// t.TempDir can exceed for long test names.
	dir, err := os.MkdirTemp("", "sway")
	if err != nil {
		t.Fatalf("create socket dir: %v", err)
	}
	socket := filepath.Join(dir, "sway.sock")

	listener, err := net.Listen("unix", socket)
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("listen on %s: %v", socket, err)
	}

	if replier == nil {
		replier = AcceptAll
	}
	s := &FakeSway{
		socket:   socket,
		listener: listener,
		replier:  replier,
		conns:    make(map[net.Conn]struct{}),
	}

	s.wg.Add(1)
	go s.serve()

	t.Cleanup(func() {
		s.Close()
		os.RemoveAll(dir)
	})
	return s
}

// AcceptAll reports success for every command.
func AcceptAll(commands []string) []ipc.Result {
	results := make([]ipc.Result, len(commands))
	for i := range results {
		results[i] = ipc.Result{Success: true}
	}
	return results
}

// RejectContaining fails every command containing any of needles, as a
// sway error, and accepts the rest.
func RejectContaining(needles ...string) Replier {
	return func(commands []string) []ipc.Result {
		results := AcceptAll(commands)
		for i, c := range commands {
			for _, needle := range needles {
				if strings.Contains(c, needle) {
					results[i] = ipc.Result{Success: false, Error: "Unknown/invalid command '" + strings.TrimSpace(c) + "'"}
					break
				}
			}
		}
		return results
	}
}

// SplitCommands splits a RUN_COMMAND payload into the commands sway
// replies for: one per ';' entry, and one per ',' within an entry, each
// carrying the entry's criteria.
func SplitCommands(payload string) []string {
	var out []string
	for _, entry := range strings.Split(payload, ";") {
		entry = strings.TrimSpace(entry)
		criteria := ""
		if strings.HasPrefix(entry, "[") {
			if end := strings.Index(entry, "]"); end >= 0 {
				criteria, entry = entry[:end+1], entry[end+1:]
			}
		}
		for _, cmd := range strings.Split(entry, ",") {
			out = append(out, criteria+strings.TrimSpace(cmd))
		}
	}
	return out
}

// Socket returns the socket path to dial.
func (s *FakeSway) Socket() string {
	return s.socket
}

// Received returns the messages received so far, in order.
func (s *FakeSway) Received() []Received {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Received(nil), s.received...)
}

// Close stops the server and waits for its goroutines. It is safe to call
// more than once.
func (s *FakeSway) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()

	s.listener.Close()
	s.wg.Wait()
}

func (s *FakeSway) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.conns[conn] = struct{}{}
		s.wg.Add(1)
		s.mu.Unlock()

		go s.handle(conn)
	}
}

func (s *FakeSway) handle(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		typ, payload, err := readMessage(conn)
		if err != nil {
			return
		}

		s.mu.Lock()
		s.received = append(s.received, Received{Type: typ, Payload: string(payload)})
		s.mu.Unlock()

		reply, err := s.reply(typ, string(payload))
		if err != nil {
			return
		}
		if err := writeMessage(conn, typ, reply); err != nil {
			return
		}
	}
}

func (s *FakeSway) reply(typ MessageType, payload string) ([]byte, error) {
	switch typ {
	case MsgRunCommand:
		return json.Marshal(s.replier(SplitCommands(payload)))
	case MsgGetVersion:
		return json.Marshal(FakeVersion)
	default:
		return nil, errors.New("unsupported message type")
	}
}
