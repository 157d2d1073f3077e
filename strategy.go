package slashfill

///////////////////////////////////////////////////////////////////////////////
// Strategy Interface
///////////////////////////////////////////////////////////////////////////////

// Strategy is a paired extraction/serialization implementation bound to
// exactly one parameter type. The binding is immutable: for a given type the
// same Strategy performs both directions, so a serialized candidate is always
// re-extractable without a kind mismatch.
//
// Strategies are pure. They never mutate the input Value, never perform I/O,
// and are safe for concurrent use.
type Strategy interface {
	// Name returns a unique identifier for this strategy
	Name() string
	// ExtractPartial extracts the partial input from a structured value.
	// It fails with StructureMismatchError if the value's kind does not
	// match what the strategy expects.
	ExtractPartial(v Value) (any, error)
	// IntoValue serializes a chosen candidate of the strategy's target type
	// back into a structured value for the autocomplete response.
	IntoValue(candidate any) (Value, error)
}

///////////////////////////////////////////////////////////////////////////////
// Autocompletable Capability
///////////////////////////////////////////////////////////////////////////////

// Autocompletable marks types that declare their own extraction and
// serialization pair. Implementing it shadows every built-in strategy, so the
// resolver delegates both operations to the type verbatim.
//
// It exists for types whose partial input cannot be represented by the fully
// parsed form (e.g. an IP address mid-typing), so ExtractPartial may return a
// representation other than the implementing type itself.
//
// ExtractPartial is invoked on the zero value of the type and must not depend
// on receiver state. IntoValue is invoked on the chosen candidate.
type Autocompletable interface {
	// ExtractPartial extracts the partial input from a structured value.
	ExtractPartial(v Value) (any, error)
	// IntoValue serializes the receiver as an autocomplete choice value.
	//
	// This is the counterpart to ExtractPartial.
	IntoValue() Value
}
