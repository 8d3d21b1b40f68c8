package machine

import "github.com/roach88/enigma/internal/wiring"

// Reflector turns the signal back through the rotors. It has no inverse
// operation because its table is its own inverse.
type Reflector struct {
	spec *wiring.ReflectorSpec
}

// NewReflector wraps a reflector table.
func NewReflector(spec *wiring.ReflectorSpec) *Reflector {
	return &Reflector{spec: spec}
}

// Scramble returns the letter's reflected partner. It never returns the
// letter itself.
func (r *Reflector) Scramble(letter rune) rune {
	i, ok := wiring.Index(letter)
	if !ok {
		return letter
	}
	return wiring.Letter(r.spec.Reflect(i))
}
