package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix allows a future algorithm change.
const (
	DomainKeySheet = "enigma/keysheet/v1"
	DomainTrace    = "enigma/trace/v1"
)

// Hash computes SHA-256 over domain, a 0x00 separator, and data.
func Hash(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// KeySheetHash fingerprints a key sheet record. Equal settings always
// produce equal hashes, which lets the journal group messages by key.
func KeySheetHash(r KeySheetRecord) (string, error) {
	canonical, err := MarshalCanonical(r.Object())
	if err != nil {
		return "", fmt.Errorf("KeySheetHash: failed to marshal: %w", err)
	}
	return Hash(DomainKeySheet, canonical), nil
}

// TraceHash fingerprints a keystroke trace.
func TraceHash(steps []TraceStep) (string, error) {
	items := make([]any, len(steps))
	for i, s := range steps {
		items[i] = s.Object()
	}
	canonical, err := MarshalCanonical(items)
	if err != nil {
		return "", fmt.Errorf("TraceHash: failed to marshal: %w", err)
	}
	return Hash(DomainTrace, canonical), nil
}
