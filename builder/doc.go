// Package builder provides reusable “functional‐options”‐style building blocks
// for constructing core.Graph topologies. It centralizes common configuration,
// ID schemes, and construction logic, keeping constructors DRY, testable, and
// consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, partition prefixes, etc.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefixed decimal strings ("V0","V1",…).
//   - Shared constants:
//     – CenterVertexID: hub identifier used by Wheel.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on a fresh graph
//     produces identical vertex and edge counts.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors
//     (e.g. WithIDScheme(nil), WithRand(nil)).
//   - Structured runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrOptionViolation) wrapped with
//     per-constructor context for easy filtering via errors.Is.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//   - Fully testable: IDFn, BuilderOption, and constructor branches are covered
//     by unit tests alongside their implementation files.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
