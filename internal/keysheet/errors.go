package keysheet

import (
	"errors"
	"fmt"
)

// Kind identifies the key sheet field a validation error blames.
type Kind int

const (
	// KindPlugboardPairs blames the Steckerbrett pairs.
	KindPlugboardPairs Kind = iota + 1

	// KindRingSettings blames the Ringstellung.
	KindRingSettings

	// KindRotorOrder blames the Walzenlage.
	KindRotorOrder

	// KindRotorPositions blames the Grundstellung.
	KindRotorPositions
)

// Validation error codes (E201-E204).
const (
	ErrCodePlugboardPairs = "E201"
	ErrCodeRingSettings   = "E202"
	ErrCodeRotorOrder     = "E203"
	ErrCodeRotorPositions = "E204"
)

// String returns the human-readable error summary for the field.
func (k Kind) String() string {
	switch k {
	case KindPlugboardPairs:
		return "invalid plugboard pairs"
	case KindRingSettings:
		return "invalid ring settings"
	case KindRotorOrder:
		return "invalid rotor order"
	case KindRotorPositions:
		return "invalid rotor positions"
	default:
		return fmt.Sprintf("invalid key sheet field (kind %d)", int(k))
	}
}

// Code returns the stable error code for the field.
func (k Kind) Code() string {
	switch k {
	case KindPlugboardPairs:
		return ErrCodePlugboardPairs
	case KindRingSettings:
		return ErrCodeRingSettings
	case KindRotorOrder:
		return ErrCodeRotorOrder
	case KindRotorPositions:
		return ErrCodeRotorPositions
	default:
		return "E200"
	}
}

// Field returns the snake_case field name used in documents and JSON output.
func (k Kind) Field() string {
	switch k {
	case KindPlugboardPairs:
		return "plugboard_pairs"
	case KindRingSettings:
		return "ring_settings"
	case KindRotorOrder:
		return "rotor_order"
	case KindRotorPositions:
		return "rotor_positions"
	default:
		return "keysheet"
	}
}

// ValidationError is a terminal key sheet error. There is no retry: the
// caller must not build a machine from the offending input.
type ValidationError struct {
	// Kind names the field at fault.
	Kind Kind

	// Value is the raw input that was rejected.
	Value string

	// Message describes the specific rule that failed.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Kind.Code(), e.Kind, e.Message)
}

// Code returns the error code of the blamed field.
func (e *ValidationError) Code() string { return e.Kind.Code() }

// Field returns the name of the blamed field.
func (e *ValidationError) Field() string { return e.Kind.Field() }

// IsKind reports whether err is a ValidationError blaming the given field.
// Uses errors.As to handle wrapped errors.
func IsKind(err error, kind Kind) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind == kind
	}
	return false
}

func newError(kind Kind, value, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}
