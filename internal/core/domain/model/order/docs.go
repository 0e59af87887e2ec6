// Package order implements the order aggregate of the kitchen engine: the
// per-item preparation state machine, the order-level status derivation and
// the bookkeeping for front-of-house edits and ready-for-service alerts.
//
// The aggregate follows Domain-Driven Design principles: private fields,
// constructor functions that enforce invariants, and behavior expressed as
// validated methods. All item mutation flows through the Order aggregate
// root; item transitions are strictly forward and all-or-none per request.
package order
