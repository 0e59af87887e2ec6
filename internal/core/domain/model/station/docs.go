// Package station holds the configuration-side domain model of the kitchen
// engine: preparation stations (KDS screens) and the routing table that
// assigns menu items to them. The engine reads both as snapshots; they are
// owned and mutated by the configuration authority.
package station
