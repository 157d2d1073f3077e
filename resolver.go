package slashfill

import (
	"fmt"
	"reflect"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// Strategy Probes
///////////////////////////////////////////////////////////////////////////////

// strategyProbe pairs a type predicate with a strategy constructor. Probes
// are consulted in specificity order and the first match wins, so a lower
// probe is never reached for a type a higher one applies to.
type strategyProbe struct {
	name    string
	matches func(t reflect.Type) bool
	build   func(t reflect.Type) Strategy
}

func defaultProbes() []strategyProbe {
	return []strategyProbe{
		{
			name: CompositeStrategyName,
			matches: func(t reflect.Type) bool {
				return t.Implements(AutocompletableType) ||
					reflect.PointerTo(t).Implements(AutocompletableType)
			},
			build: func(t reflect.Type) Strategy { return newCompositeStrategy(t) },
		},
		{
			name:    Float64StrategyName,
			matches: func(t reflect.Type) bool { return t.Kind() == reflect.Float64 },
			build:   func(t reflect.Type) Strategy { return newFloatStrategy(t) },
		},
		{
			name:    Float32StrategyName,
			matches: func(t reflect.Type) bool { return t.Kind() == reflect.Float32 },
			build:   func(t reflect.Type) Strategy { return newFloatStrategy(t) },
		},
		{
			name:    IntegerStrategyName,
			matches: isIntegerKind,
			build:   func(t reflect.Type) Strategy { return newIntegerStrategy(t) },
		},
		{
			name:    StringStrategyName,
			matches: textCapable,
			build:   func(t reflect.Type) Strategy { return newStringConvertibleStrategy(t) },
		},
	}
}

func isIntegerKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return true
	default:
		return false
	}
}

///////////////////////////////////////////////////////////////////////////////
// Resolver Impl.
///////////////////////////////////////////////////////////////////////////////

// Resolver selects exactly one Strategy per parameter type.
//
// Resolution walks a priority-ordered list of type predicates, so when two
// strategies could apply (every built-in type is also string-convertible) the
// more specific one shadows the fallback. The choice depends only on the
// type, never on the value being processed, and is made once per type: the
// result is cached, so repeated lookups are a map read.
//
// Resolution is meant to run while the command tree is being built. A type
// nothing applies to fails then, with ErrNoStrategy, before any interaction
// is served.
type Resolver struct {
	mutex  sync.RWMutex
	cache  map[reflect.Type]Strategy
	probes []strategyProbe
}

func NewResolver() *Resolver {
	return &Resolver{
		cache:  make(map[reflect.Type]Strategy),
		probes: defaultProbes(),
	}
}

// Resolve returns the single strategy bound to t.
func (r *Resolver) Resolve(t reflect.Type) (Strategy, error) {
	r.mutex.RLock()
	if strat, exists := r.cache[t]; exists {
		r.mutex.RUnlock()
		return strat, nil
	}
	r.mutex.RUnlock()

	for _, probe := range r.probes {
		if !probe.matches(t) {
			continue
		}
		strat := probe.build(t)

		r.mutex.Lock()
		// Another goroutine may have resolved t in the meantime; keep the
		// stored strategy so both directions share one instance.
		if existing, exists := r.cache[t]; exists {
			strat = existing
		} else {
			r.cache[t] = strat
		}
		r.mutex.Unlock()
		return strat, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoStrategy, t)
}

// MustResolve is Resolve for command-build-time wiring, where an unresolvable
// parameter type is a programming error.
func (r *Resolver) MustResolve(t reflect.Type) Strategy {
	strat, err := r.Resolve(t)
	if err != nil {
		panic(err)
	}
	return strat
}

///////////////////////////////////////////////////////////////////////////////
// Global Singleton and Package Functions
///////////////////////////////////////////////////////////////////////////////

var _gResolver = NewResolver()

// Package-level functions that delegate to the global Resolver instance

func Resolve(t reflect.Type) (Strategy, error) {
	return _gResolver.Resolve(t)
}

func MustResolve(t reflect.Type) Strategy {
	return _gResolver.MustResolve(t)
}

// StrategyFor resolves the strategy bound to the type parameter T.
func StrategyFor[T any]() (Strategy, error) {
	return _gResolver.Resolve(reflect.TypeOf((*T)(nil)).Elem())
}
