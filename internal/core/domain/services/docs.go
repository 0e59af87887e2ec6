// Package services contains pure domain services of the kitchen engine.
// Domain services hold logic that spans aggregates without owning state:
// the Router computes per-station views from an order and a routing-table
// snapshot, leaving all mutation to the order aggregate.
package services
