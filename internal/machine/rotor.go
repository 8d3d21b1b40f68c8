package machine

import (
	"fmt"

	"github.com/roach88/enigma/internal/keysheet"
	"github.com/roach88/enigma/internal/wiring"
)

// Rotor is one physical rotor placed in a slot. Its wiring is shared
// read-only with every other machine using the same rotor; only the window
// position changes.
type Rotor struct {
	slot keysheet.Slot
	spec *wiring.RotorSpec
	ring int // Ringstellung, 0-based
	pos  int // window letter, 0-based
}

// NewRotor places spec in slot with the given ring setting (1..26) and turns
// it to the start letter.
func NewRotor(slot keysheet.Slot, spec *wiring.RotorSpec, ringSetting int, start rune) (*Rotor, error) {
	if spec == nil {
		return nil, fmt.Errorf("%s rotor: missing wiring", slot)
	}
	if ringSetting < 1 || ringSetting > wiring.Size {
		return nil, fmt.Errorf("%s rotor: ring setting %d outside 1..%d", slot, ringSetting, wiring.Size)
	}
	if !wiring.IsLetter(start) {
		return nil, fmt.Errorf("%s rotor: start position: %w", slot, &DomainError{Letter: start, Offset: -1})
	}

	r := &Rotor{slot: slot, spec: spec, ring: ringSetting - 1}
	r.StepTo(start)
	return r, nil
}

// Slot returns where the rotor sits.
func (r *Rotor) Slot() keysheet.Slot { return r.slot }

// ID returns the rotor's catalog name.
func (r *Rotor) ID() wiring.RotorID { return r.spec.ID() }

// Position returns the letter showing in the window.
func (r *Rotor) Position() rune { return wiring.Letter(r.pos) }

// NotchAligned reports whether the window shows the turnover letter, so the
// next key press will also move the rotor to the left.
func (r *Rotor) NotchAligned() bool { return wiring.Letter(r.pos) == r.spec.Notch() }

// Step advances the rotor by n positions. Negative n turns it backwards.
func (r *Rotor) Step(n int) {
	r.pos = wiring.Mod(r.pos + n)
}

// StepTo turns the rotor forward until letter shows in the window.
// Non-letters are ignored.
func (r *Rotor) StepTo(letter rune) {
	i, ok := wiring.Index(letter)
	if !ok {
		return
	}
	r.Step(wiring.Mod(i - r.pos))
}

// Scramble maps a contact on the keyboard-to-reflector path.
// Letters outside A-Z are returned unchanged.
func (r *Rotor) Scramble(letter rune) rune {
	i, ok := wiring.Index(letter)
	if !ok {
		return letter
	}
	return wiring.Letter(r.forward(i))
}

// Unscramble maps a contact on the reflector-to-keyboard path. It is the
// exact inverse of Scramble for the same rotor position.
func (r *Rotor) Unscramble(letter rune) rune {
	i, ok := wiring.Index(letter)
	if !ok {
		return letter
	}
	return wiring.Letter(r.backward(i))
}

func (r *Rotor) offset() int {
	return r.pos - r.ring
}

func (r *Rotor) forward(i int) int {
	o := r.offset()
	return wiring.Mod(r.spec.Forward(i+o) - o)
}

func (r *Rotor) backward(i int) int {
	o := r.offset()
	return wiring.Mod(r.spec.Inverse(i+o) - o)
}
