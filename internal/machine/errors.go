package machine

import (
	"errors"
	"fmt"
)

// ErrOutOfDomain is returned for input letters outside A-Z.
var ErrOutOfDomain = errors.New("letter outside A-Z")

// DomainError reports a letter the machine has no key for.
type DomainError struct {
	Letter rune
	Offset int // position in the input text, -1 for a single key press
}

func (e *DomainError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%v: %q at offset %d", ErrOutOfDomain, e.Letter, e.Offset)
	}
	return fmt.Sprintf("%v: %q", ErrOutOfDomain, e.Letter)
}

// Unwrap lets errors.Is match ErrOutOfDomain.
func (e *DomainError) Unwrap() error {
	return ErrOutOfDomain
}
