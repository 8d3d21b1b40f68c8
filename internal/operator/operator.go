package operator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/enigma/internal/ir"
	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/machine"
)

var (
	// ErrEmptyMessage is returned when nothing is left after normalization.
	ErrEmptyMessage = errors.New("no letters to encipher")

	// ErrJournal wraps failures to record an enciphered message.
	ErrJournal = errors.New("journal write failed")
)

// Journal records transmitted messages. *store.Store implements it.
type Journal interface {
	WriteMessage(ctx context.Context, msg *ir.Message) error
}

// Operator runs messages through freshly keyed machines.
type Operator struct {
	journal Journal
	ids     IDGenerator
	logger  *slog.Logger
}

// Option configures an Operator.
type Option func(*Operator)

// WithJournal records every transmitted message.
func WithJournal(j Journal) Option {
	return func(o *Operator) { o.journal = j }
}

// WithIDGenerator overrides the default UUIDv7 message ids.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *Operator) {
		if g != nil {
			o.ids = g
		}
	}
}

// WithLogger sets the logger handed to every machine.
func WithLogger(l *slog.Logger) Option {
	return func(o *Operator) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an Operator. Without WithJournal nothing is recorded.
func New(opts ...Option) *Operator {
	o := &Operator{
		ids:    UUIDv7Generator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Transmit normalizes text, enciphers it on a new machine keyed from ks,
// and journals the result. Deciphering is the same call with the
// ciphertext as text.
func (o *Operator) Transmit(ctx context.Context, ks *keysheet.KeySheet, text string) (*ir.Message, error) {
	input := Normalize(text)
	if input == "" {
		return nil, ErrEmptyMessage
	}

	m, err := machine.New(ks, machine.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	output, err := m.Encipher(input)
	if err != nil {
		return nil, err
	}

	hash, err := ks.Fingerprint()
	if err != nil {
		return nil, err
	}

	msg := &ir.Message{
		ID:           o.ids.Generate(),
		KeySheetHash: hash,
		KeySheet:     ks.Record(),
		Input:        input,
		Output:       output,
	}
	o.logger.Debug("message enciphered", "id", msg.ID, "letters", len(input), "end_positions", m.Positions())

	if o.journal != nil {
		if err := o.journal.WriteMessage(ctx, msg); err != nil {
			return nil, fmt.Errorf("%w: message %s: %w", ErrJournal, msg.ID, err)
		}
		o.logger.Info("message journaled", "id", msg.ID, "seq", msg.Seq)
	}

	return msg, nil
}

// Verify rebuilds the machine from a journaled message's key sheet and
// checks both directions: input enciphers to output, and output deciphers
// back to input.
func Verify(msg *ir.Message) error {
	ks, err := keysheet.Parse(keysheet.FromRecord(msg.KeySheet))
	if err != nil {
		return fmt.Errorf("message %s: stored key sheet: %w", msg.ID, err)
	}

	hash, err := ks.Fingerprint()
	if err != nil {
		return err
	}
	if hash != msg.KeySheetHash {
		return fmt.Errorf("message %s: key sheet hash mismatch", msg.ID)
	}

	for _, dir := range []struct {
		name     string
		from, to string
	}{
		{"encipher", msg.Input, msg.Output},
		{"decipher", msg.Output, msg.Input},
	} {
		m, err := machine.New(ks)
		if err != nil {
			return err
		}
		got, err := m.Encipher(dir.from)
		if err != nil {
			return fmt.Errorf("message %s: %s: %w", msg.ID, dir.name, err)
		}
		if got != dir.to {
			return &MismatchError{MessageID: msg.ID, Direction: dir.name, Want: dir.to, Got: got}
		}
	}

	return nil
}

// MismatchError reports a journaled message that no longer reproduces.
type MismatchError struct {
	MessageID string
	Direction string
	Want      string
	Got       string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("message %s: %s mismatch: want %s, got %s", e.MessageID, e.Direction, e.Want, e.Got)
}
