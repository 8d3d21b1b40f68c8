package testutil

import (
	"testing"

	"github.com/roach88/enigma/internal/keysheet"
)

// DefaultRaw is the operator's default key: rotors I,II,III, rings 01,
// window EAB, and three plugboard cables.
func DefaultRaw() keysheet.Raw {
	return keysheet.Raw{
		PlugboardPairs: "AZ,BY,CX",
		RingSettings:   "01,01,01",
		RotorOrder:     "I,II,III",
		RotorPositions: "EAB",
	}
}

// MustKeySheet parses raw or fails the test.
func MustKeySheet(tb testing.TB, raw keysheet.Raw) *keysheet.KeySheet {
	tb.Helper()
	ks, err := keysheet.Parse(raw)
	if err != nil {
		tb.Fatalf("parse key sheet %+v: %v", raw, err)
	}
	return ks
}
