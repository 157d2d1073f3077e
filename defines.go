package slashfill

import (
	"encoding"
	"fmt"
	"reflect"
)

// Strategy name constants for the built in strategies.
const (
	CompositeStrategyName = "composite"
	Float64StrategyName   = "float64"
	Float32StrategyName   = "float32"
	IntegerStrategyName   = "integer"
	StringStrategyName    = "string-convertible"
)

// Expected-kind messages carried by StructureMismatchError.
const (
	ExpectedInteger = "expected integer"
	ExpectedFloat   = "expected float"
	ExpectedString  = "expected string"
)

// MaxChoices is the largest number of choices an autocomplete response may
// carry. Extra choices are truncated by the handler.
const MaxChoices = 25

// Interaction option type discriminants for subcommand nesting.
const (
	optionTypeSubCommand      = 1
	optionTypeSubCommandGroup = 2
)

// autocompleteResultType is the interaction response type for autocomplete
// suggestions.
const autocompleteResultType = 8

// reflect.Type constants for capability checks
var (
	AutocompletableType = reflect.TypeOf((*Autocompletable)(nil)).Elem()
	StringerType        = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	TextMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)
