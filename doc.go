// Package slashfill resolves autocomplete candidates for typed slash-command
// parameters.
//
// A slash-command autocomplete interaction delivers the user's partially
// typed input for one parameter as a JSON-like structured value. This package
// extracts a "partial" representation of that input appropriate to the
// parameter's declared Go type, hands it to a user callback that produces
// candidate choices, and serializes chosen candidates back into structured
// values for the response.
//
// Extraction and serialization are performed by a strategy bound to the
// parameter type. The resolver picks exactly one strategy per type, in
// specificity order:
//   - Composite: the type implements [Autocompletable] and supplies its own
//     extraction/serialization pair.
//   - Float64, then Float32: floating-point kinds.
//   - Integer: any integer kind, with overflow checking into the target type.
//   - String-convertible: the widest class, any type that can format itself
//     as text. The partial is the raw input string; final parsing into the
//     target type is the caller's responsibility.
//
// Only the most specific applicable strategy is ever consulted for a type,
// and the same strategy serves both directions, so a serialized candidate is
// always re-extractable without a kind mismatch.
//
// Resolution happens once per type, when a parameter is built, never per
// request and never based on the value being processed. The typed front in
// [Binding] moves the check to compile time: each constructor's generic
// constraint rejects inapplicable types outright.
//
// To use the package:
//   - NewParam() / MustParam(): declare a parameter with an autocomplete callback
//   - NewHandler(): register commands and answer interaction payloads
//   - IntBinding(), FloatBinding(), StringerBinding(), ...: typed
//     extraction/serialization outside the handler pipeline
//   - StrategyFor() / Resolve(): direct access to strategy resolution
//
// All extraction and serialization is pure and synchronous. The package
// holds no state across calls, so any number of extractions may run
// concurrently without coordination.
package slashfill
