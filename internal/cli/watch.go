package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/swaycmd/internal/ipc"
	"github.com/roach88/swaycmd/internal/watch"
)

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	*RootOptions
	Database string
	Socket   string
	Debounce time.Duration
	Timeout  time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "watch <recipe>",
		Short: "Send a recipe on every change",
		Long: `Send a recipe once, then again each time the file is saved.

Rapid saves are debounced. An invalid recipe or a rejected command is
reported and watching continues. Stop with Ctrl-C.

Examples:
  swaycmd watch layout.yaml
  swaycmd watch layout.cue --db ./swaycmd.db --debounce 1s`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "history database path (default $"+DatabaseEnv+")")
	cmd.Flags().StringVar(&opts.Socket, "socket", "", "sway IPC socket (default $"+ipc.SocketEnv+")")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", watch.DefaultDebounce, "quiet period before re-sending")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 5*time.Second, "IPC timeout per send")

	return cmd
}

func runWatch(opts *WatchOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := opts.logger()

	if _, err := os.Stat(path); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("recipe not found: %s", path), nil)
	}

	s, err := newSender(opts.Socket, resolveDatabase(opts.Database), logger)
	if err != nil {
		return failSender(formatter, err)
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	send := func(ctx context.Context, path string) {
		sendRecipe(ctx, formatter, s, path, opts.Timeout, logger)
	}
	send(ctx, path)

	w, err := watch.New(path, send, watch.WithDebounce(opts.Debounce), watch.WithLogger(logger.Named("watch")))
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWatch, err.Error(), nil)
	}
	defer w.Stop()
	if err := w.Start(ctx); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWatch, err.Error(), nil)
	}

	formatter.VerboseLog("Watching %s", path)
	<-ctx.Done()
	return nil
}

// sendRecipe loads and sends one revision of a watched recipe. Failures
// are reported and never stop the watch.
func sendRecipe(ctx context.Context, formatter *OutputFormatter, s *sender, path string, timeout time.Duration, logger *zap.Logger) {
	rec, list, err := loadRecipe(path)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Error(), loadErrorDetails(loadErr))
		}
		logger.Warn("recipe invalid", zap.String("path", path), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := s.Send(ctx, rec.Name, list.String(), list.Texts())
	if err != nil {
		_ = formatter.Error(ErrCodeIPC, err.Error(), nil)
		logger.Warn("send failed", zap.String("recipe", rec.Name), zap.Error(err))
		return
	}
	// A rejected command is already in the output; keep watching.
	_ = outputSendResult(formatter, result)
}
