package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/swaycmd/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	ID       string // show one batch
	SameAs   string // batches with the same digest as this batch
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sent batches",
		Long: `List the command batches recorded by send and watch, newest first.

Batches that differ only in whitespace or Unicode normalization share a
digest; --same-as lists every batch equivalent to the given one.

Examples:
  swaycmd history --db ./swaycmd.db
  swaycmd history --db ./swaycmd.db --limit 5
  swaycmd history --db ./swaycmd.db --id 0192f0a4-...
  swaycmd history --db ./swaycmd.db --same-as 0192f0a4-... --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "history database path (default $"+DatabaseEnv+")")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum batches to list (0 for all)")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show one batch with its replies")
	cmd.Flags().StringVar(&opts.SameAs, "same-as", "", "list batches equivalent to this batch")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := cmdContext(cmd)

	database := resolveDatabase(opts.Database)
	if database == "" {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "--db or $"+DatabaseEnv+" is required", nil)
	}

	st, err := store.Open(database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, fmt.Sprintf("failed to open database: %v", err), nil)
	}
	defer st.Close()

	var batches []store.Batch
	switch {
	case opts.ID != "":
		var b store.Batch
		b, err = st.GetBatch(ctx, opts.ID)
		batches = []store.Batch{b}
	case opts.SameAs != "":
		var b store.Batch
		b, err = st.GetBatch(ctx, opts.SameAs)
		if err == nil {
			formatter.VerboseLog("Digest %s", b.Digest)
			batches, err = st.FindByDigest(ctx, b.Digest)
		}
	default:
		batches, err = st.ListBatches(ctx, opts.Limit)
	}
	if errors.Is(err, store.ErrNotFound) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, err.Error(), nil)
	}
	if batches == nil {
		batches = []store.Batch{}
	}

	if formatter.Format == "json" {
		return formatter.Success(batches)
	}
	outputHistoryText(formatter, batches, opts.ID != "")
	return nil
}

func outputHistoryText(formatter *OutputFormatter, batches []store.Batch, detailed bool) {
	w := formatter.Writer
	if len(batches) == 0 {
		fmt.Fprintln(w, "No batches recorded")
		return
	}

	for _, b := range batches {
		status := "✓"
		if b.Failed() {
			status = "✗"
		} else if len(b.Replies) == 0 {
			status = "?" // recorded, no reply
		}
		recipe := b.Recipe
		if recipe == "" {
			recipe = "(raw)"
		}
		fmt.Fprintf(w, "%s #%d %s %s\n", status, b.Seq, b.ID, recipe)

		if !detailed {
			continue
		}
		fmt.Fprintf(w, "  digest: %s\n", b.Digest)
		texts := strings.Split(b.Payload, ";")
		for _, r := range b.Replies {
			text := ""
			if r.Index < len(texts) {
				text = strings.TrimSpace(texts[r.Index])
			}
			if r.Success {
				fmt.Fprintf(w, "  [%d] ✓ %s\n", r.Index, text)
			} else {
				fmt.Fprintf(w, "  [%d] ✗ %s: %s\n", r.Index, text, r.Error)
			}
		}
	}
}
