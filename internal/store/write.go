package store

import (
	"context"
	"fmt"

	"github.com/roach88/enigma/internal/ir"
)

// WriteMessage appends a message to the journal and sets msg.Seq to the
// sequence number it was assigned. Writing an id that already exists
// returns an error; messages are never overwritten.
func (s *Store) WriteMessage(ctx context.Context, msg *ir.Message) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM messages`).Scan(&seq); err != nil {
		return fmt.Errorf("write message: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO messages
		(id, seq, keysheet_hash, plugboard_pairs, ring_settings, rotor_order, rotor_positions, input, output, record_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		msg.ID,
		seq,
		msg.KeySheetHash,
		msg.KeySheet.PlugboardPairs,
		msg.KeySheet.RingSettings,
		msg.KeySheet.RotorOrder,
		msg.KeySheet.RotorPositions,
		msg.Input,
		msg.Output,
		ir.RecordVersion,
	)
	if err != nil {
		return fmt.Errorf("write message %s: %w", msg.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write message %s: commit: %w", msg.ID, err)
	}

	msg.Seq = seq
	return nil
}
