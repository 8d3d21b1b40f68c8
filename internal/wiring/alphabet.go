package wiring

// Alphabet is the closed set every position, permutation and setting is
// defined over.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of contacts on every rotor, the reflector and the
// plugboard.
const Size = len(Alphabet)

// Index returns the 0-based alphabet position of an uppercase letter.
func Index(letter rune) (int, bool) {
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return int(letter - 'A'), true
}

// Letter returns the letter at alphabet position i, wrapping modulo Size.
func Letter(i int) rune {
	return rune('A' + Mod(i))
}

// IsLetter reports whether r is one of the 26 uppercase letters.
func IsLetter(r rune) bool {
	_, ok := Index(r)
	return ok
}

// Mod reduces i into [0, Size), also for negative i.
func Mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}
