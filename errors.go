package slashfill

import (
	"errors"
	"fmt"
)

var (
	ErrIntegerOutOfBounds   = errors.New("integer value out of bounds for the target type")
	ErrNoStrategy           = errors.New("no autocomplete strategy applies to this type")
	ErrCandidateType        = errors.New("candidate does not match the strategy's target type")
	ErrPartialType          = errors.New("extracted partial does not match the binding's partial type")
	ErrNoFocusedOption      = errors.New("interaction has no focused option")
	ErrMalformedInteraction = errors.New("interaction payload is missing its command data")
	ErrUnknownCommand       = errors.New("no command registered under this name")
	ErrUnknownParam         = errors.New("no parameter registered under this name")
	ErrParamRegistered      = errors.New("a parameter with this name is already registered for this command")
)

// StructureMismatchError is returned when a structured value's kind does not
// match what the resolved strategy requires, e.g. a String where an integer
// strategy expects a Number.
type StructureMismatchError struct {
	Expected string
}

// Error implements the error interface
func (e StructureMismatchError) Error() string {
	return fmt.Sprintf("command structure mismatch: %s", e.Expected)
}
