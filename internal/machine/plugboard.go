package machine

import (
	"fmt"

	"github.com/roach88/enigma/internal/wiring"
)

// Plugboard is the Steckerbrett: a symmetric partial permutation. Letters
// without a cable pass through unchanged.
type Plugboard struct {
	swap [wiring.Size]int
}

// NewPlugboard builds a plugboard from a mapping that holds both directions
// of every cable, as keysheet.KeySheet.PlugboardWiring does.
func NewPlugboard(pairs map[rune]rune) (*Plugboard, error) {
	p := &Plugboard{}
	for i := range p.swap {
		p.swap[i] = i
	}

	for a, b := range pairs {
		ia, okA := wiring.Index(a)
		ib, okB := wiring.Index(b)
		if !okA || !okB {
			return nil, fmt.Errorf("plugboard: cable %c-%c: %w", a, b, ErrOutOfDomain)
		}
		if back, ok := pairs[b]; !ok || back != a {
			return nil, fmt.Errorf("plugboard: cable %c-%c is not symmetric", a, b)
		}
		p.swap[ia] = ib
	}

	return p, nil
}

// Scramble returns the letter's partner, or the letter itself.
func (p *Plugboard) Scramble(letter rune) rune {
	i, ok := wiring.Index(letter)
	if !ok {
		return letter
	}
	return wiring.Letter(p.swap[i])
}

// Unscramble is Scramble: the board is its own inverse.
func (p *Plugboard) Unscramble(letter rune) rune {
	return p.Scramble(letter)
}
