package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/enigma/internal/ir"
)

const messageColumns = `id, seq, keysheet_hash, plugboard_pairs, ring_settings, rotor_order, rotor_positions, input, output`

// ReadMessage returns one message by id, or ErrNotFound.
func (s *Store) ReadMessage(ctx context.Context, id string) (*ir.Message, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)

	msg, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read message %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read message %s: %w", id, err)
	}
	return msg, nil
}

// ListMessages returns journaled messages in seq order. A limit of zero or
// less returns all of them.
//
// Returns an empty slice (not nil) when the journal is empty.
func (s *Store) ListMessages(ctx context.Context, limit int) ([]*ir.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY seq ASC, id COLLATE BINARY ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages := []*ir.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}

// ListByKeySheet returns the messages sent under one key sheet fingerprint.
func (s *Store) ListByKeySheet(ctx context.Context, hash string) ([]*ir.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE keysheet_hash = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, hash)
	if err != nil {
		return nil, fmt.Errorf("query messages by key sheet: %w", err)
	}
	defer rows.Close()

	messages := []*ir.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (*ir.Message, error) {
	var msg ir.Message
	err := row.Scan(
		&msg.ID,
		&msg.Seq,
		&msg.KeySheetHash,
		&msg.KeySheet.PlugboardPairs,
		&msg.KeySheet.RingSettings,
		&msg.KeySheet.RotorOrder,
		&msg.KeySheet.RotorPositions,
		&msg.Input,
		&msg.Output,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan message: %w", err)
	}
	return &msg, nil
}
