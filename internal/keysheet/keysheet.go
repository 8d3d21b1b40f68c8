package keysheet

import (
	"fmt"
	"strings"

	"github.com/roach88/enigma/internal/ir"
	"github.com/roach88/enigma/internal/wiring"
)

// NumSlots is the number of stepping rotor slots.
const NumSlots = 3

// MaxPlugboardPairs is the number of cables issued with the machine.
const MaxPlugboardPairs = 10

// Slot names a rotor position in the machine, left to right.
type Slot int

const (
	SlotLeft Slot = iota
	SlotMiddle
	SlotRight
)

func (s Slot) String() string {
	switch s {
	case SlotLeft:
		return "left"
	case SlotMiddle:
		return "middle"
	case SlotRight:
		return "right"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// Raw is the unvalidated input form of a key sheet.
type Raw struct {
	PlugboardPairs string `json:"plugboard_pairs" yaml:"plugboard_pairs"`
	RingSettings   string `json:"ring_settings" yaml:"ring_settings"`
	RotorOrder     string `json:"rotor_order" yaml:"rotor_order"`
	RotorPositions string `json:"rotor_positions" yaml:"rotor_positions"`
}

// Pair is one plugboard cable.
type Pair [2]rune

func (p Pair) String() string { return string(p[:]) }

// KeySheet is a validated machine configuration. It is never mutated after
// Parse returns it; machines copy what they need.
//
// INVARIANTS:
//   - every triple is indexed by Slot
//   - RotorOrder holds three distinct catalog ids
//   - RingSettings are in [1, 26]
//   - PlugboardWiring holds both directions of every pair
type KeySheet struct {
	PlugboardPairs  []Pair
	PlugboardWiring map[rune]rune
	RingSettings    [NumSlots]int
	RotorOrder      [NumSlots]wiring.RotorID
	RotorPositions  [NumSlots]rune
}

// Parse validates all four fields and returns the first error found, in
// field order: plugboard pairs, ring settings, rotor order, rotor positions.
func Parse(raw Raw) (*KeySheet, error) {
	pairs, plugboard, err := parsePlugboardPairs(raw.PlugboardPairs)
	if err != nil {
		return nil, err
	}
	rings, err := parseRingSettings(raw.RingSettings)
	if err != nil {
		return nil, err
	}
	order, err := parseRotorOrder(raw.RotorOrder)
	if err != nil {
		return nil, err
	}
	positions, err := parseRotorPositions(raw.RotorPositions)
	if err != nil {
		return nil, err
	}

	return &KeySheet{
		PlugboardPairs:  pairs,
		PlugboardWiring: plugboard,
		RingSettings:    rings,
		RotorOrder:      order,
		RotorPositions:  positions,
	}, nil
}

// Validate checks every field independently and returns one error per
// failing field. An empty result means Parse would succeed.
func Validate(raw Raw) []*ValidationError {
	var errs []*ValidationError
	collect := func(err error) {
		if ve, ok := err.(*ValidationError); ok {
			errs = append(errs, ve)
		}
	}

	_, _, err := parsePlugboardPairs(raw.PlugboardPairs)
	collect(err)
	_, err = parseRingSettings(raw.RingSettings)
	collect(err)
	_, err = parseRotorOrder(raw.RotorOrder)
	collect(err)
	_, err = parseRotorPositions(raw.RotorPositions)
	collect(err)

	return errs
}

// Raw returns the normalized input form. Parse(ks.Raw()) yields a KeySheet
// equal to ks.
func (ks *KeySheet) Raw() Raw {
	pairs := make([]string, len(ks.PlugboardPairs))
	for i, p := range ks.PlugboardPairs {
		pairs[i] = p.String()
	}
	rings := make([]string, NumSlots)
	order := make([]string, NumSlots)
	for i := 0; i < NumSlots; i++ {
		rings[i] = fmt.Sprintf("%02d", ks.RingSettings[i])
		order[i] = string(ks.RotorOrder[i])
	}

	return Raw{
		PlugboardPairs: strings.Join(pairs, ","),
		RingSettings:   strings.Join(rings, ","),
		RotorOrder:     strings.Join(order, ","),
		RotorPositions: string(ks.RotorPositions[:]),
	}
}

// Record returns the journal form of the key sheet.
func (ks *KeySheet) Record() ir.KeySheetRecord {
	raw := ks.Raw()
	return ir.KeySheetRecord{
		PlugboardPairs: raw.PlugboardPairs,
		RingSettings:   raw.RingSettings,
		RotorOrder:     raw.RotorOrder,
		RotorPositions: raw.RotorPositions,
	}
}

// Fingerprint returns a content hash of the normalized settings.
func (ks *KeySheet) Fingerprint() (string, error) {
	return ir.KeySheetHash(ks.Record())
}

// FromRecord converts a journal record back to raw input.
func FromRecord(r ir.KeySheetRecord) Raw {
	return Raw{
		PlugboardPairs: r.PlugboardPairs,
		RingSettings:   r.RingSettings,
		RotorOrder:     r.RotorOrder,
		RotorPositions: r.RotorPositions,
	}
}
