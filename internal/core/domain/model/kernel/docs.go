// Package kernel provides core domain primitives shared by the kitchen
// engine's domain model.
//
// The package currently contains a single building block:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//
// These primitives are immutable and thread-safe, and enforce their
// invariants through constructor functions rather than direct struct
// initialization.
package kernel
