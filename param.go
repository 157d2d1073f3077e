package slashfill

import (
	"context"
	"fmt"
)

// Choice is one autocomplete candidate: a display name and a value of the
// parameter's target type. The value is serialized with the parameter's own
// strategy when the response is built.
type Choice struct {
	Name  string
	Value any
}

// AutocompleteFunc produces candidate choices for a partially typed input.
// The partial's concrete type depends on the parameter's strategy: the target
// type itself for numeric strategies, a raw string for string-convertible
// ones, and whatever the type's Autocompletable implementation returns for
// composite ones.
//
// Filtering and ranking candidates is entirely the callback's business; the
// handler only truncates to MaxChoices.
type AutocompleteFunc func(ctx context.Context, partial any) ([]Choice, error)

// Param describes one autocompletable command parameter. The strategy is
// resolved when the Param is built, so an unsupported target type surfaces as
// an error at command-construction time, never while serving interactions.
type Param struct {
	name     string
	strat    Strategy
	complete AutocompleteFunc
}

// NewParam builds a Param whose target type is T.
func NewParam[T any](name string, complete AutocompleteFunc) (*Param, error) {
	strat, err := StrategyFor[T]()
	if err != nil {
		return nil, fmt.Errorf("param %q: %w", name, err)
	}
	return &Param{name: name, strat: strat, complete: complete}, nil
}

// MustParam is NewParam for static command tables, where an unresolvable
// parameter type is a programming error.
func MustParam[T any](name string, complete AutocompleteFunc) *Param {
	p, err := NewParam[T](name, complete)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the parameter name.
func (p *Param) Name() string {
	return p.name
}

// Strategy returns the strategy resolved for the parameter's target type.
func (p *Param) Strategy() Strategy {
	return p.strat
}
