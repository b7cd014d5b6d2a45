package ipc

import (
	"context"
	"errors"
	"fmt"
	"os"

	gosway "github.com/joshuarubin/go-sway"
	"go.uber.org/zap"
)

// SocketEnv names the environment variable sway exports with its socket
// path.
const SocketEnv = "SWAYSOCK"

// ErrNoSocket is returned when no socket path is configured.
var ErrNoSocket = errors.New("ipc: no sway socket (set " + SocketEnv + " or pass a path)")

// Result is sway's reply for one command of a RUN_COMMAND payload.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Version is the GET_VERSION reply.
type Version struct {
	Major                int    `json:"major"`
	Minor                int    `json:"minor"`
	Patch                int    `json:"patch"`
	HumanReadable        string `json:"human_readable"`
	LoadedConfigFileName string `json:"loaded_config_file_name"`
}

// Client talks to sway over its UNIX socket. Every call opens its own
// connection, so a Client is safe for concurrent use.
type Client struct {
	socket string
	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for message-level debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a client for socket. An empty socket falls back to
// $SWAYSOCK.
func New(socket string, opts ...Option) (*Client, error) {
	if socket == "" {
		socket = os.Getenv(SocketEnv)
	}
	if socket == "" {
		return nil, ErrNoSocket
	}

	c := &Client{socket: socket, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Socket returns the socket path the client dials.
func (c *Client) Socket() string {
	return c.socket
}

// RunCommand sends a command list and returns one Result per command sway
// ran. If any command failed the results are returned together with a
// *CommandError.
func (c *Client) RunCommand(ctx context.Context, commands string) ([]Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("ipc send",
		zap.String("type", "RUN_COMMAND"),
		zap.Int("bytes", len(commands)),
		zap.String("socket", c.socket),
	)
	replies, err := conn.RunCommand(ctx, commands)
	if err != nil && len(replies) == 0 {
		return nil, c.ctxErr(ctx, fmt.Errorf("RUN_COMMAND: %w", err))
	}
	c.logger.Debug("ipc reply",
		zap.String("type", "RUN_COMMAND"),
		zap.Int("results", len(replies)),
	)

	results := make([]Result, len(replies))
	for i, r := range replies {
		results[i] = Result{Success: r.Success, Error: r.Error}
	}
	if cerr := newCommandError(results); cerr != nil {
		return results, cerr
	}
	return results, nil
}

// GetVersion asks sway for its version.
func (c *Client) GetVersion(ctx context.Context) (*Version, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("ipc send", zap.String("type", "GET_VERSION"), zap.String("socket", c.socket))
	v, err := conn.GetVersion(ctx)
	if err != nil {
		return nil, c.ctxErr(ctx, fmt.Errorf("GET_VERSION: %w", err))
	}
	c.logger.Debug("ipc reply", zap.String("type", "GET_VERSION"), zap.String("version", v.HumanReadable))

	return &Version{
		Major:                int(v.Major),
		Minor:                int(v.Minor),
		Patch:                int(v.Patch),
		HumanReadable:        v.HumanReadable,
		LoadedConfigFileName: v.LoadedConfigFileName,
	}, nil
}

// dial connects for the lifetime of ctx; go-sway closes the connection
// when ctx is done.
func (c *Client) dial(ctx context.Context) (gosway.Client, error) {
	conn, err := gosway.New(ctx, gosway.WithSocketPath(c.socket))
	if err != nil {
		return nil, c.ctxErr(ctx, fmt.Errorf("dial sway socket %s: %w", c.socket, err))
	}
	return conn, nil
}

// ctxErr prefers the context's error over the I/O error it caused.
func (c *Client) ctxErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	if _, ok := ctx.Deadline(); ok && errors.Is(err, os.ErrDeadlineExceeded) {
		return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	}
	return err
}
