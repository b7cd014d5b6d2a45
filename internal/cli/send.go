package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/swaycmd/internal/ipc"
	"github.com/roach88/swaycmd/internal/store"
	"github.com/roach88/swaycmd/internal/sway"
)

// DatabaseEnv is the fallback for --db.
const DatabaseEnv = "SWAYCMD_DB"

// SendOptions holds flags for the send command.
type SendOptions struct {
	*RootOptions
	Database string
	Socket   string
	Raw      string
	Timeout  time.Duration
}

// CommandResult is sway's reply to one command of a sent batch.
type CommandResult struct {
	Index      int    `json:"index"`
	Command    string `json:"command,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// SendResult is the outcome of one send.
type SendResult struct {
	BatchID  string          `json:"batch_id,omitempty"`
	Recipe   string          `json:"recipe,omitempty"`
	Payload  string          `json:"payload"`
	Commands []CommandResult `json:"commands"`
}

// Failed counts the rejected commands.
func (r *SendResult) Failed() int {
	n := 0
	for _, c := range r.Commands {
		if !c.Success {
			n++
		}
	}
	return n
}

// NewSendCommand creates the send command.
func NewSendCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SendOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "send [recipe]",
		Short: "Send a recipe or raw commands to sway",
		Long: `Render a recipe and run it in sway over the IPC socket.

With --db (or $SWAYCMD_DB) the batch and sway's replies are recorded
in the history database. The socket defaults to $SWAYSOCK.

Exits 1 if sway rejected any command; the other commands still ran.

Examples:
  swaycmd send browser-float.yaml
  swaycmd send --raw 'workspace 5; exec foot'
  swaycmd send layout.cue --db ~/.local/state/swaycmd.db --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "history database path (default $"+DatabaseEnv+")")
	cmd.Flags().StringVar(&opts.Socket, "socket", "", "sway IPC socket (default $"+ipc.SocketEnv+")")
	cmd.Flags().StringVar(&opts.Raw, "raw", "", "send this command text instead of a recipe")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 5*time.Second, "IPC timeout")

	return cmd
}

func runSend(opts *SendOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	var (
		name, payload string
		labels        []string
	)
	switch {
	case len(args) == 1 && opts.Raw != "":
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, "pass a recipe or --raw, not both", nil)
	case len(args) == 1:
		rec, list, err := loadRecipe(args[0])
		if err != nil {
			return failLoad(formatter, err)
		}
		name, payload, labels = rec.Name, list.String(), list.Texts()
	case opts.Raw != "":
		payload, labels = opts.Raw, rawLabels(opts.Raw)
	default:
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, "a recipe or --raw is required", nil)
	}

	s, err := newSender(opts.Socket, resolveDatabase(opts.Database), opts.logger())
	if err != nil {
		return failSender(formatter, err)
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(cmdContext(cmd), opts.Timeout)
	defer cancel()

	result, err := s.Send(ctx, name, payload, labels)
	if err != nil {
		return failSender(formatter, err)
	}
	return outputSendResult(formatter, result)
}

func outputSendResult(formatter *OutputFormatter, result *SendResult) error {
	failed := result.Failed()

	if formatter.Format == "json" {
		if err := formatter.SuccessBatch(result.BatchID, result); err != nil {
			return err
		}
	} else {
		for _, c := range result.Commands {
			label := c.Command
			if label == "" {
				label = fmt.Sprintf("#%d", c.Index)
			}
			if c.Success {
				fmt.Fprintf(formatter.Writer, "✓ %s\n", label)
				continue
			}
			fmt.Fprintf(formatter.Writer, "✗ %s: %s\n", label, c.Error)
		}
		summary := fmt.Sprintf("Sent %d command(s), %d failed", len(result.Commands), failed)
		if result.BatchID != "" {
			summary += " (batch " + result.BatchID + ")"
		}
		fmt.Fprintln(formatter.Writer, summary)
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %d of %d commands failed", ErrCodeRejected, failed, len(result.Commands)))
	}
	return nil
}

// sender sends payloads to sway and records them in history when a
// store is configured.
type sender struct {
	client *ipc.Client
	store  *store.Store // nil without a database
	logger *zap.Logger
}

func newSender(socket, database string, logger *zap.Logger) (*sender, error) {
	client, err := ipc.New(socket, ipc.WithLogger(logger.Named("ipc")))
	if err != nil {
		return nil, err
	}

	s := &sender{client: client, logger: logger}
	if database == "" {
		return s, nil
	}

	s.store, err = store.Open(database)
	if err != nil {
		return nil, &databaseError{err: err}
	}
	return s, nil
}

func (s *sender) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Send runs a payload and records the batch with sway's replies. labels
// name the commands sway replies for; they are dropped when their count
// does not match the replies. A rejected command is reported in the
// result, not as an error. Nothing is recorded when sway could not be
// reached.
func (s *sender) Send(ctx context.Context, recipeName, payload string, labels []string) (*SendResult, error) {
	result := &SendResult{Recipe: recipeName, Payload: payload}

	s.logger.Debug("sending batch",
		zap.String("recipe", recipeName),
		zap.Int("bytes", len(payload)))

	replies, err := s.client.RunCommand(ctx, payload)
	var cerr *ipc.CommandError
	if err != nil && !errors.As(err, &cerr) {
		return nil, err
	}

	if len(labels) != len(replies) {
		labels = nil
	}
	stored := make([]store.Reply, len(replies))
	for i, r := range replies {
		c := CommandResult{Index: i, Success: r.Success, Error: r.Error}
		if labels != nil {
			c.Command = sway.NormalizeWhitespace(labels[i])
		}
		result.Commands = append(result.Commands, c)
		stored[i] = store.Reply{Index: i, Success: r.Success, Error: r.Error}
	}

	if s.store != nil {
		batch, err := s.store.RecordBatch(ctx, recipeName, payload)
		if err != nil {
			return nil, &databaseError{err: err}
		}
		result.BatchID = batch.ID
		if err := s.store.RecordReplies(ctx, batch.ID, stored); err != nil {
			return nil, &databaseError{err: err}
		}
	}

	if cerr != nil {
		s.logger.Warn("sway rejected commands", zap.String("batch", result.BatchID), zap.Error(cerr))
	}
	return result, nil
}

// rawLabels splits raw command text on ';' for labelling replies.
func rawLabels(payload string) []string {
	labels := strings.Split(payload, ";")
	for i, l := range labels {
		labels[i] = strings.TrimSpace(l)
	}
	return labels
}

// databaseError marks history store failures for error codes.
type databaseError struct{ err error }

func (e *databaseError) Error() string { return "history database: " + e.err.Error() }
func (e *databaseError) Unwrap() error { return e.err }

// failSender maps sender errors to error codes.
func failSender(formatter *OutputFormatter, err error) error {
	var dbErr *databaseError
	switch {
	case errors.Is(err, ipc.ErrNoSocket):
		return formatter.Fail(ExitCommandError, ErrCodeNoSocket, err.Error(), nil)
	case errors.As(err, &dbErr):
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, err.Error(), nil)
	default:
		return formatter.Fail(ExitCommandError, ErrCodeIPC, err.Error(), nil)
	}
}

// resolveDatabase returns the --db flag, falling back to $SWAYCMD_DB.
func resolveDatabase(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(DatabaseEnv)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
