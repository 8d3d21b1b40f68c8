package operator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enigma/internal/ir"
	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/machine"
	"github.com/roach88/enigma/internal/testutil"
)

type memoryJournal struct {
	messages []*ir.Message
	err      error
}

func (j *memoryJournal) WriteMessage(_ context.Context, msg *ir.Message) error {
	if j.err != nil {
		return j.err
	}
	msg.Seq = int64(len(j.messages) + 1)
	j.messages = append(j.messages, msg)
	return nil
}

func defaultKeySheet(t *testing.T) *keysheet.KeySheet {
	t.Helper()
	return testutil.MustKeySheet(t, testutil.DefaultRaw())
}

func TestTransmitRoundTrip(t *testing.T) {
	ks := defaultKeySheet(t)
	j := &memoryJournal{}
	op := New(WithJournal(j), WithIDGenerator(NewFixedGenerator("msg-1", "msg-2")))

	sent, err := op.Transmit(context.Background(), ks, "Hello, world!")
	require.NoError(t, err)
	assert.Equal(t, "msg-1", sent.ID)
	assert.Equal(t, "HELLOWORLD", sent.Input)
	assert.Equal(t, "QRVUEYAHGN", sent.Output)
	assert.Equal(t, int64(1), sent.Seq)
	assert.Equal(t, ks.Record(), sent.KeySheet)

	received, err := op.Transmit(context.Background(), ks, Group(sent.Output, DefaultGroupSize))
	require.NoError(t, err)
	assert.Equal(t, "HELLOWORLD", received.Output)
	assert.Equal(t, sent.KeySheetHash, received.KeySheetHash)

	require.Len(t, j.messages, 2)
}

func TestTransmitWithoutJournal(t *testing.T) {
	op := New()
	msg, err := op.Transmit(context.Background(), defaultKeySheet(t), "A")
	require.NoError(t, err)
	assert.Equal(t, "K", msg.Output)
	assert.Len(t, msg.ID, 36)
	assert.Zero(t, msg.Seq)
}

func TestTransmitEmpty(t *testing.T) {
	_, err := New().Transmit(context.Background(), defaultKeySheet(t), "123 ...")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestTransmitJournalFailure(t *testing.T) {
	j := &memoryJournal{err: errors.New("disk full")}
	op := New(WithJournal(j), WithIDGenerator(NewFixedGenerator("msg-1")))

	_, err := op.Transmit(context.Background(), defaultKeySheet(t), "ABC")
	require.ErrorIs(t, err, ErrJournal)
	assert.ErrorIs(t, err, j.err)
	assert.Contains(t, err.Error(), "msg-1")
	assert.Contains(t, err.Error(), "disk full")
}

func TestTransmitInvalidKeySheet(t *testing.T) {
	ks := *defaultKeySheet(t)
	ks.RotorOrder[2] = "IX"
	_, err := New().Transmit(context.Background(), &ks, "ABC")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrJournal)
}

func TestVerify(t *testing.T) {
	msg, err := New(WithIDGenerator(NewFixedGenerator("msg-1"))).Transmit(context.Background(), defaultKeySheet(t), "HELLOWORLD")
	require.NoError(t, err)
	require.NoError(t, Verify(msg))

	tampered := *msg
	tampered.Output = "QRVUEYAHGM"
	err = Verify(&tampered)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "encipher", mismatch.Direction)

	rekeyed := *msg
	rekeyed.KeySheet.RotorPositions = "AAA"
	assert.ErrorContains(t, Verify(&rekeyed), "hash mismatch")

	broken := *msg
	broken.KeySheet.RingSettings = "27,01,01"
	err = Verify(&broken)
	assert.True(t, keysheet.IsKind(err, keysheet.KindRingSettings))

	garbled := *msg
	garbled.Input = "HELLO WORLD"
	err = Verify(&garbled)
	assert.ErrorIs(t, err, machine.ErrOutOfDomain)
}

func TestFixedGeneratorExhausted(t *testing.T) {
	g := NewFixedGenerator("only")
	assert.Equal(t, "only", g.Generate())
	assert.Panics(t, func() { g.Generate() })
}

func TestUUIDv7GeneratorUnique(t *testing.T) {
	g := UUIDv7Generator{}
	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
