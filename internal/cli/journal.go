package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/enigma/internal/ir"
	"github.com/roach88/enigma/internal/operator"
	"github.com/roach88/enigma/internal/store"
)

// JournalOptions holds flags for the journal command.
type JournalOptions struct {
	*RootOptions
	Database string
	Limit    int
	KeySheet string // optional - fingerprint filter
}

// JournalResult is the JSON payload of the journal command.
type JournalResult struct {
	Messages []*ir.Message `json:"messages"`
	Shown    int           `json:"shown"`
	Total    int64         `json:"total"`
}

// NewJournalCommand creates the journal command.
func NewJournalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JournalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recorded messages",
		Long: `List the messages recorded in a journal, oldest first.

Examples:
  enigma journal --db traffic.db
  enigma journal --db traffic.db --limit 10 --format json
  enigma journal --db traffic.db --keysheet 3f1c...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournal(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite journal (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show at most this many messages (0 for all)")
	cmd.Flags().StringVar(&opts.KeySheet, "keysheet", "", "only messages sent under this key sheet fingerprint")

	return cmd
}

func runJournal(opts *JournalOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := openJournal(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
		return err
	}
	defer st.Close()

	ctx := context.Background()
	var messages []*ir.Message
	if opts.KeySheet != "" {
		messages, err = st.ListByKeySheet(ctx, opts.KeySheet)
		if err == nil && opts.Limit > 0 && len(messages) > opts.Limit {
			messages = messages[:opts.Limit]
		}
	} else {
		messages, err = st.ListMessages(ctx, opts.Limit)
	}
	if err != nil {
		_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to list messages", err)
	}

	total, err := st.Count(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to count messages", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(JournalResult{Messages: messages, Shown: len(messages), Total: total})
	}

	if len(messages) == 0 {
		fmt.Fprintln(formatter.Writer, "No messages found in journal.")
		return nil
	}

	for _, msg := range messages {
		fmt.Fprintf(formatter.Writer, "%4d  %s  %s  %s\n",
			msg.Seq, msg.ID, msg.KeySheet.RotorPositions, operator.Group(msg.Output, operator.DefaultGroupSize))
		formatter.VerboseLog("      key %s %s %s [%s]",
			msg.KeySheet.RotorOrder, msg.KeySheet.RingSettings, msg.KeySheet.PlugboardPairs, shortHash(msg.KeySheetHash))
	}
	formatter.VerboseLog("%d of %d message(s)", len(messages), total)
	return nil
}

// openJournal opens an existing journal. Unlike encipher, reading commands
// never create one.
func openJournal(path string) (*store.Store, error) {
	if !fileExists(path) {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("journal not found: %s", path))
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open journal", err)
	}
	return st, nil
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
