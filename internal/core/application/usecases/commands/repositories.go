// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"kitchen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StationRepoFactory provides access to the station repository within a
	// transaction.
	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	// OrderUoW manages transactions for order-only operations. Used by
	// commands that only touch order aggregates; repository Get calls inside
	// it lock the order row so concurrent transitions serialize.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StationUoW manages transactions for station configuration operations.
	StationUoW interface {
		TxManager
		StationRepoFactory
	}

	// StationUoWFactory creates new station unit of work instances.
	StationUoWFactory interface {
		Create() StationUoW
	}

	// UoW manages transactions across orders and station configuration.
	UoW interface {
		TxManager
		OrderRepoFactory
		StationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
