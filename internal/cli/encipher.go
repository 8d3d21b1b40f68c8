package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/enigma/internal/machine"
	"github.com/roach88/enigma/internal/operator"
	"github.com/roach88/enigma/internal/store"
)

// EncipherOptions holds flags for the encipher command.
type EncipherOptions struct {
	*RootOptions
	Key     KeyFlags
	Group   int
	Journal string
}

// EncipherResult is the JSON payload of the encipher command.
type EncipherResult struct {
	ID           string `json:"id"`
	Seq          int64  `json:"seq,omitempty"`
	KeySheetHash string `json:"keysheet_hash"`
	Input        string `json:"input"`
	Output       string `json:"output"`
	Grouped      string `json:"grouped"`
}

// NewEncipherCommand creates the encipher command.
func NewEncipherCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncipherOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "encipher [text...]",
		Aliases: []string{"decipher"},
		Short:   "Encipher or decipher a message",
		Long: `Type a message on a machine set from the key sheet and print the lamps.

The machine is reciprocal: deciphering is enciphering the ciphertext with
the same settings, so "decipher" is an alias. Letters are upper-cased,
accents are dropped and everything outside A-Z is skipped. With no text
arguments the message is read from stdin.

Settings default to the ENIGMA_* environment variables (and .env), which
flags override. --keys with --day takes the whole setting from a key list.

Exit codes:
  0 - Message enciphered
  1 - Invalid key sheet or empty message
  2 - Command error (unreadable key list, journal errors, etc.)

Examples:
  enigma encipher --rotor-positions EAB --plugboard-pairs AZ,BY,CX HELLO WORLD
  echo "QRVUE YAHGN" | enigma decipher -g EAB --plugboard-pairs AZ,BY,CX
  enigma encipher --keys june.yaml --day 7 --journal traffic.db ANGRIFF`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncipher(opts, args, cmd)
		},
	}

	opts.Key.bind(cmd)
	cmd.Flags().IntVar(&opts.Group, "group", -1, "letters per output group, 0 for none (default from ENIGMA_GROUP_SIZE)")
	cmd.Flags().StringVar(&opts.Journal, "journal", "", "record the message in this SQLite journal (default from ENIGMA_JOURNAL)")

	return cmd
}

func runEncipher(opts *EncipherOptions, args []string, cmd *cobra.Command) error {
	ctx := context.Background()
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	cfg, err := opts.config()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	ks, err := opts.Key.resolve(cmd, cfg)
	if err != nil {
		return keyError(formatter, err)
	}

	text, err := readMessage(args, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read message", err)
	}

	operatorOpts := []operator.Option{operator.WithLogger(logger)}

	journalPath := cfg.Journal
	if cmd.Flags().Changed("journal") {
		journalPath = opts.Journal
	}
	if journalPath != "" {
		st, err := store.Open(journalPath)
		if err != nil {
			_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to open journal", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing journal", "error", closeErr)
			}
		}()
		operatorOpts = append(operatorOpts, operator.WithJournal(st))
	}

	msg, err := operator.New(operatorOpts...).Transmit(ctx, ks, text)
	if err != nil {
		return transmitError(formatter, err)
	}

	groupSize := cfg.GroupSize
	if opts.Group >= 0 {
		groupSize = opts.Group
	}
	grouped := operator.Group(msg.Output, groupSize)

	formatter.VerboseLog("key sheet %s", msg.KeySheetHash)
	if msg.Seq > 0 {
		formatter.VerboseLog("journaled as %s (seq %d)", msg.ID, msg.Seq)
	}

	if opts.Format == "json" {
		return formatter.Success(EncipherResult{
			ID:           msg.ID,
			Seq:          msg.Seq,
			KeySheetHash: msg.KeySheetHash,
			Input:        msg.Input,
			Output:       msg.Output,
			Grouped:      grouped,
		})
	}
	return formatter.Success(grouped)
}

// readMessage joins the arguments, or reads all of r when there are none.
func readMessage(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// transmitError reports a Transmit failure under the code of whatever
// actually failed.
func transmitError(formatter *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, operator.ErrEmptyMessage):
		_ = formatter.Error(ErrCodeInput, err.Error(), nil)
		return WrapExitError(ExitFailure, "nothing to encipher", err)
	case errors.Is(err, machine.ErrOutOfDomain):
		// Normalize should have removed the letter; reaching here is a bug.
		_ = formatter.Error(ErrCodeInput, err.Error(), nil)
		return WrapExitError(ExitFailure, "message contains characters outside A-Z", err)
	case errors.Is(err, operator.ErrJournal):
		_ = formatter.Error(ErrCodeJournal, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to record message", err)
	default:
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to encipher message", err)
	}
}
