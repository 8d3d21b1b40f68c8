package wiring

import "fmt"

// RotorID names one of the interchangeable rotors.
type RotorID string

// Rotor catalog of the Enigma I.
const (
	RotorI   RotorID = "I"
	RotorII  RotorID = "II"
	RotorIII RotorID = "III"
	RotorIV  RotorID = "IV"
	RotorV   RotorID = "V"
)

// RotorSpec is the immutable description of one physical rotor.
// Instances are shared read-only by every machine built from them.
type RotorSpec struct {
	id      RotorID
	forward [Size]int
	inverse [Size]int
	notch   int
}

// ID returns the rotor's catalog name.
func (s *RotorSpec) ID() RotorID { return s.id }

// Forward maps an entry contact to its exit contact on the keyboard-to-reflector path.
func (s *RotorSpec) Forward(i int) int { return s.forward[Mod(i)] }

// Inverse maps an exit contact back to its entry contact.
func (s *RotorSpec) Inverse(i int) int { return s.inverse[Mod(i)] }

// Notch returns the window letter at which the rotor drives its left neighbour.
func (s *RotorSpec) Notch() rune { return Letter(s.notch) }

// Wiring returns the base permutation as a 26-letter string.
func (s *RotorSpec) Wiring() string { return permutationString(s.forward) }

// ReflectorSpec is the immutable, involutive reflector permutation.
type ReflectorSpec struct {
	name    string
	reflect [Size]int
}

// Name returns the reflector's designation.
func (s *ReflectorSpec) Name() string { return s.name }

// Reflect maps a contact to its partner.
func (s *ReflectorSpec) Reflect(i int) int { return s.reflect[Mod(i)] }

// Wiring returns the permutation as a 26-letter string.
func (s *ReflectorSpec) Wiring() string { return permutationString(s.reflect) }

var (
	rotorOrder = []RotorID{RotorI, RotorII, RotorIII, RotorIV, RotorV}

	rotors = map[RotorID]*RotorSpec{
		RotorI:   mustRotor(RotorI, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q'),
		RotorII:  mustRotor(RotorII, "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'E'),
		RotorIII: mustRotor(RotorIII, "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V'),
		RotorIV:  mustRotor(RotorIV, "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'J'),
		RotorV:   mustRotor(RotorV, "VZBRGITYUPSDNHLXAWMJQOFECK", 'Z'),
	}

	reflectorB = mustReflector("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT")
)

// Rotor looks up a rotor in the catalog.
func Rotor(id RotorID) (*RotorSpec, bool) {
	s, ok := rotors[id]
	return s, ok
}

// RotorIDs returns the catalog in its conventional order.
func RotorIDs() []RotorID {
	out := make([]RotorID, len(rotorOrder))
	copy(out, rotorOrder)
	return out
}

// Reflector returns the machine's only reflector, B.
func Reflector() *ReflectorSpec {
	return reflectorB
}

func mustRotor(id RotorID, table string, notch rune) *RotorSpec {
	forward, err := parsePermutation(table)
	if err != nil {
		panic(fmt.Sprintf("wiring: rotor %s: %v", id, err))
	}
	n, ok := Index(notch)
	if !ok {
		panic(fmt.Sprintf("wiring: rotor %s: notch %q outside alphabet", id, notch))
	}
	s := &RotorSpec{id: id, forward: forward, notch: n}
	for i, o := range forward {
		s.inverse[o] = i
	}
	return s
}

func mustReflector(name, table string) *ReflectorSpec {
	p, err := parsePermutation(table)
	if err != nil {
		panic(fmt.Sprintf("wiring: reflector %s: %v", name, err))
	}
	for i, o := range p {
		if o == i || p[o] != i {
			panic(fmt.Sprintf("wiring: reflector %s is not a fixed-point-free involution at %c", name, Letter(i)))
		}
	}
	return &ReflectorSpec{name: name, reflect: p}
}

// parsePermutation checks that table is a bijection over the alphabet.
func parsePermutation(table string) ([Size]int, error) {
	var p [Size]int
	if len(table) != Size {
		return p, fmt.Errorf("table has %d letters, want %d", len(table), Size)
	}
	var seen [Size]bool
	for i, r := range table {
		o, ok := Index(r)
		if !ok {
			return p, fmt.Errorf("letter %q outside alphabet", r)
		}
		if seen[o] {
			return p, fmt.Errorf("letter %c appears twice", r)
		}
		seen[o] = true
		p[i] = o
	}
	return p, nil
}

func permutationString(p [Size]int) string {
	b := make([]byte, Size)
	for i, o := range p {
		b[i] = byte('A' + o)
	}
	return string(b)
}
