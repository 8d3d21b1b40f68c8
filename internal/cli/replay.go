package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/enigma/internal/ir"
	"github.com/roach88/enigma/internal/operator"
	"github.com/roach88/enigma/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database  string
	MessageID string // optional - specific message only
}

// ReplayMessageResult holds the replay result for a single message.
type ReplayMessageResult struct {
	ID       string `json:"id"`
	Seq      int64  `json:"seq"`
	Verified bool   `json:"verified"`
	Error    string `json:"error,omitempty"`
}

// ReplayResult holds the overall replay result.
type ReplayResult struct {
	Messages    []ReplayMessageResult `json:"messages"`
	Total       int                   `json:"total"`
	AllVerified bool                  `json:"all_verified"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-run journaled messages and verify them",
		Long: `Rebuild a fresh machine for every journaled message from its stored key
sheet, then check that the input still enciphers to the recorded output
and that the output deciphers back to the input.

Exit codes:
  0 - All messages verified
  1 - One or more messages do not reproduce
  2 - Command error (journal not found, etc.)

Examples:
  enigma replay --db traffic.db
  enigma replay --db traffic.db --message 0190c3e2-...
  enigma replay --db traffic.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite journal (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.MessageID, "message", "", "replay one message only")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	ctx := context.Background()
	formatter := opts.formatter(cmd)

	st, err := openJournal(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
		return err
	}
	defer st.Close()

	var messages []*ir.Message
	if opts.MessageID != "" {
		msg, err := st.ReadMessage(ctx, opts.MessageID)
		if errors.Is(err, store.ErrNotFound) {
			_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
			return WrapExitError(ExitCommandError, "message not found", err)
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read message", err)
		}
		messages = []*ir.Message{msg}
	} else {
		messages, err = st.ListMessages(ctx, 0)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list messages", err)
		}
	}

	result := ReplayResult{
		Messages:    make([]ReplayMessageResult, 0, len(messages)),
		Total:       len(messages),
		AllVerified: true,
	}

	for _, msg := range messages {
		mr := ReplayMessageResult{ID: msg.ID, Seq: msg.Seq, Verified: true}
		if err := operator.Verify(msg); err != nil {
			mr.Verified = false
			mr.Error = err.Error()
			result.AllVerified = false
			opts.logger().Warn("message does not replay", "id", msg.ID, "error", err)
		}
		result.Messages = append(result.Messages, mr)
	}

	if formatter.Format == "json" {
		return outputReplayJSON(formatter, result)
	}
	return outputReplayText(formatter, result)
}

// outputReplayJSON outputs the replay result as JSON.
func outputReplayJSON(formatter *OutputFormatter, result ReplayResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}

	if !result.AllVerified {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeMismatch,
			Message: "replay verification failed",
		}
	}

	if err := formatter.JSON(response); err != nil {
		return err
	}

	if !result.AllVerified {
		return NewExitError(ExitFailure, "replay verification failed")
	}
	return nil
}

// outputReplayText outputs the replay result as text.
func outputReplayText(formatter *OutputFormatter, result ReplayResult) error {
	w := formatter.Writer

	if result.Total == 0 {
		fmt.Fprintln(w, "No messages found in journal.")
		return nil
	}

	fmt.Fprintf(w, "Replay Summary: %d message(s)\n", result.Total)
	fmt.Fprintln(w)

	failed := 0
	for _, m := range result.Messages {
		if m.Verified {
			fmt.Fprintf(w, "✓ %d %s\n", m.Seq, m.ID)
			continue
		}
		failed++
		fmt.Fprintf(w, "✗ %d %s\n", m.Seq, m.ID)
		fmt.Fprintf(w, "  %s\n", m.Error)
	}

	fmt.Fprintln(w)
	if failed > 0 {
		fmt.Fprintf(w, "✗ %d message(s) failed verification\n", failed)
		return NewExitError(ExitFailure, "replay verification failed")
	}
	fmt.Fprintln(w, "✓ All messages verified")
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
