package keysheet

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/roach88/enigma/internal/wiring"
)

func splitList(s string) []string {
	tokens := strings.Split(s, ",")
	for i, t := range tokens {
		tokens[i] = upperASCII(strings.TrimSpace(t))
	}
	return tokens
}

// upperASCII folds only a-z. strings.ToUpper would turn runes such as ı and
// ſ into Latin letters.
func upperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, s)
}

func allLetters(s string) bool {
	for _, r := range s {
		if !wiring.IsLetter(r) {
			return false
		}
	}
	return true
}

// parsePlugboardPairs validates the Steckerbrett. An empty input means no
// cables are plugged in.
func parsePlugboardPairs(raw string) ([]Pair, map[rune]rune, error) {
	wiringMap := make(map[rune]rune)
	if strings.TrimSpace(raw) == "" {
		return nil, wiringMap, nil
	}

	tokens := splitList(raw)
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) != 2 {
			return nil, nil, newError(KindPlugboardPairs, raw, "pair %q must be exactly two letters", tok)
		}
		if !allLetters(tok) {
			return nil, nil, newError(KindPlugboardPairs, raw, "pair %q contains a non-letter", tok)
		}
	}

	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if seen[tok] {
			return nil, nil, newError(KindPlugboardPairs, raw, "pair %q is given more than once", tok)
		}
		seen[tok] = true
	}

	if len(tokens) > MaxPlugboardPairs {
		return nil, nil, newError(KindPlugboardPairs, raw, "%d pairs given, at most %d cables exist", len(tokens), MaxPlugboardPairs)
	}

	pairs := make([]Pair, 0, len(tokens))
	for _, tok := range tokens {
		a, b := rune(tok[0]), rune(tok[1])
		if a == b {
			return nil, nil, newError(KindPlugboardPairs, raw, "pair %q connects a letter to itself", tok)
		}
		// A socket takes one cable, so a letter has at most one partner.
		for _, l := range []rune{a, b} {
			if _, used := wiringMap[l]; used {
				return nil, nil, newError(KindPlugboardPairs, raw, "letter %c is wired more than once", l)
			}
		}
		wiringMap[a] = b
		wiringMap[b] = a
		pairs = append(pairs, Pair{a, b})
	}

	return pairs, wiringMap, nil
}

// parseRingSettings validates the Ringstellung: three two-digit numbers in [1, 26].
func parseRingSettings(raw string) ([NumSlots]int, error) {
	var rings [NumSlots]int

	tokens := splitList(raw)
	if len(tokens) != NumSlots {
		return rings, newError(KindRingSettings, raw, "want %d settings, got %d", NumSlots, len(tokens))
	}

	for i, tok := range tokens {
		if len(tok) != 2 || tok[0] < '0' || tok[0] > '9' || tok[1] < '0' || tok[1] > '9' {
			return rings, newError(KindRingSettings, raw, "setting %q must be two digits, e.g. 01", tok)
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return rings, newError(KindRingSettings, raw, "setting %q is not a number", tok)
		}
		if n < 1 || n > wiring.Size {
			return rings, newError(KindRingSettings, raw, "setting %q is outside 01..%d", tok, wiring.Size)
		}
		rings[i] = n
	}

	return rings, nil
}

// parseRotorOrder validates the Walzenlage: three distinct catalog rotors,
// listed left to right.
func parseRotorOrder(raw string) ([NumSlots]wiring.RotorID, error) {
	var order [NumSlots]wiring.RotorID

	tokens := splitList(raw)
	if len(tokens) != NumSlots {
		return order, newError(KindRotorOrder, raw, "want %d rotors, got %d", NumSlots, len(tokens))
	}

	used := make(map[wiring.RotorID]bool, NumSlots)
	for i, tok := range tokens {
		id := wiring.RotorID(tok)
		if _, ok := wiring.Rotor(id); !ok {
			return order, newError(KindRotorOrder, raw, "unknown rotor %q (want one of %v)", tok, wiring.RotorIDs())
		}
		if used[id] {
			return order, newError(KindRotorOrder, raw, "rotor %s is used in more than one slot", id)
		}
		used[id] = true
		order[i] = id
	}

	return order, nil
}

// parseRotorPositions validates the Grundstellung: one letter per slot, as a
// single token such as "EAB".
func parseRotorPositions(raw string) ([NumSlots]rune, error) {
	var positions [NumSlots]rune

	tok := upperASCII(strings.TrimSpace(raw))
	if utf8.RuneCountInString(tok) != NumSlots || !allLetters(tok) {
		return positions, newError(KindRotorPositions, raw, "want %d letters, got %q", NumSlots, raw)
	}
	for i, r := range tok {
		positions[i] = r
	}

	return positions, nil
}
