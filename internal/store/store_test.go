package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enigma/internal/ir"
)

// createTestStore creates a new store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testMessage(id, hash string) *ir.Message {
	return &ir.Message{
		ID:           id,
		KeySheetHash: hash,
		KeySheet: ir.KeySheetRecord{
			PlugboardPairs: "AZ,BY,CX",
			RingSettings:   "01,01,01",
			RotorOrder:     "I,II,III",
			RotorPositions: "EAB",
		},
		Input:  "HELLOWORLD",
		Output: "QRVUEYAHGN",
	}
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "Open() iteration %d", i)
		require.NoError(t, s.Close())
	}
}

func TestOpen_Pragmas(t *testing.T) {
	s := createTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("user_version", fmt.Sprintf("%d", currentSchemaVersion)))
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "journal.db"))
	assert.Error(t, err)
}

func TestClose_Nil(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Close())
}

func TestWriteMessage_AssignsSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := testMessage("msg-1", "hash-a")
	second := testMessage("msg-2", "hash-a")
	require.NoError(t, s.WriteMessage(ctx, first))
	require.NoError(t, s.WriteMessage(ctx, second))

	assert.Equal(t, int64(1), first.Seq)
	assert.Equal(t, int64(2), second.Seq)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestWriteMessage_DuplicateIDRejected(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteMessage(ctx, testMessage("msg-1", "hash-a")))

	dup := testMessage("msg-1", "hash-b")
	err := s.WriteMessage(ctx, dup)
	require.Error(t, err)
	assert.Zero(t, dup.Seq)

	got, err := s.ReadMessage(ctx, "msg-1")
	require.NoError(t, err)
	assert.Equal(t, "hash-a", got.KeySheetHash)
}

func TestReadMessage_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	msg := testMessage("msg-1", "hash-a")
	require.NoError(t, s.WriteMessage(ctx, msg))

	got, err := s.ReadMessage(ctx, "msg-1")
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestReadMessage_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadMessage(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMessages(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	empty, err := s.ListMessages(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for i := 1; i <= 4; i++ {
		require.NoError(t, s.WriteMessage(ctx, testMessage(fmt.Sprintf("msg-%d", i), "hash-a")))
	}

	all, err := s.ListMessages(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, msg := range all {
		assert.Equal(t, int64(i+1), msg.Seq)
	}

	limited, err := s.ListMessages(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "msg-1", limited[0].ID)
	assert.Equal(t, "msg-2", limited[1].ID)
}

func TestListByKeySheet(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteMessage(ctx, testMessage("msg-1", "hash-a")))
	require.NoError(t, s.WriteMessage(ctx, testMessage("msg-2", "hash-b")))
	require.NoError(t, s.WriteMessage(ctx, testMessage("msg-3", "hash-a")))

	got, err := s.ListByKeySheet(ctx, "hash-a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "msg-1", got[0].ID)
	assert.Equal(t, "msg-3", got[1].ID)

	none, err := s.ListByKeySheet(ctx, "hash-z")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.WriteMessage(ctx, testMessage("msg-1", "hash-a")))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	next := testMessage("msg-2", "hash-a")
	require.NoError(t, s2.WriteMessage(ctx, next))
	assert.Equal(t, int64(2), next.Seq)
}
