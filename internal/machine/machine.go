package machine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/enigma/internal/ir"
	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/wiring"
)

// Machine is an Enigma I configured from one key sheet.
//
// Only rotor positions change after construction; plugboard and reflector
// wiring are fixed for the machine's lifetime. There is no way to rewind.
type Machine struct {
	left      *Rotor
	middle    *Rotor
	right     *Rotor
	plugboard *Plugboard
	reflector *Reflector
	logger    *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger makes the machine log every key press at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New builds a machine in the key sheet's start position.
func New(ks *keysheet.KeySheet, opts ...Option) (*Machine, error) {
	if ks == nil {
		return nil, fmt.Errorf("machine: nil key sheet")
	}

	var rotors [keysheet.NumSlots]*Rotor
	for i := range rotors {
		slot := keysheet.Slot(i)
		spec, ok := wiring.Rotor(ks.RotorOrder[i])
		if !ok {
			return nil, fmt.Errorf("machine: %s rotor: unknown rotor %q", slot, ks.RotorOrder[i])
		}
		r, err := NewRotor(slot, spec, ks.RingSettings[i], ks.RotorPositions[i])
		if err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
		rotors[i] = r
	}

	plugboard, err := NewPlugboard(ks.PlugboardWiring)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	m := &Machine{
		left:      rotors[keysheet.SlotLeft],
		middle:    rotors[keysheet.SlotMiddle],
		right:     rotors[keysheet.SlotRight],
		plugboard: plugboard,
		reflector: NewReflector(wiring.Reflector()),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	placed := make([]string, 0, keysheet.NumSlots)
	for _, r := range []*Rotor{m.left, m.middle, m.right} {
		placed = append(placed, fmt.Sprintf("%s:%s", r.Slot(), r.ID()))
	}
	m.logger.Debug("machine ready",
		"machine", ir.MachineName,
		"rotors", strings.Join(placed, ","),
		"positions", m.Positions())

	return m, nil
}

// KeyPress steps the rotors and returns the lamp that lights for letter.
// A letter outside A-Z returns a *DomainError and leaves the rotors untouched.
func (m *Machine) KeyPress(letter rune) (rune, error) {
	i, ok := wiring.Index(letter)
	if !ok {
		return 0, &DomainError{Letter: letter, Offset: -1}
	}

	out := wiring.Letter(m.press(i))

	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("key press", "in", string(letter), "out", string(out), "positions", m.Positions())
	}
	return out, nil
}

// Encipher presses every letter of text in turn. Encipherment and
// decipherment are the same operation. The whole text is checked before the
// first key press, so a rejected text leaves the rotors untouched.
func (m *Machine) Encipher(text string) (string, error) {
	for offset, r := range text {
		if !wiring.IsLetter(r) {
			return "", &DomainError{Letter: r, Offset: offset}
		}
	}

	out := make([]rune, 0, len(text))
	for _, r := range text {
		c, err := m.KeyPress(r)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	return string(out), nil
}

// Positions returns the three window letters, left to right.
func (m *Machine) Positions() string {
	return string([]rune{m.left.Position(), m.middle.Position(), m.right.Position()})
}

// step advances the rotors for one key press. Exactly one branch fires.
func (m *Machine) step() {
	switch {
	case m.right.NotchAligned():
		m.middle.Step(1)
		m.right.Step(1)
	case m.middle.NotchAligned():
		// The middle rotor's own notch drags it along with the left rotor:
		// the double step.
		m.left.Step(1)
		m.middle.Step(1)
		m.right.Step(1)
	default:
		m.right.Step(1)
	}
}

// press runs one key press on alphabet indices.
func (m *Machine) press(i int) int {
	m.step()

	i = m.plugboard.swap[i]
	i = m.right.forward(i)
	i = m.middle.forward(i)
	i = m.left.forward(i)
	i = m.reflector.spec.Reflect(i)
	i = m.left.backward(i)
	i = m.middle.backward(i)
	i = m.right.backward(i)
	return m.plugboard.swap[i]
}
