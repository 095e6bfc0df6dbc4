// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Order transition handlers additionally recompute the
// affected vendor's performance metrics inside the same transaction as the
// transition itself, so both commit together or not at all.
package commands

import (
	"context"

	"procurement/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// SnapshotRepoFactory provides access to the performance snapshot repository
	// within a transaction.
	SnapshotRepoFactory interface {
		PerformanceSnapshotRepository() ports.PerformanceSnapshotRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by order creation, which touches no vendor.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// VendorUoW manages transactions for vendor-only operations.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory creates new vendor unit of work instances.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// UoW manages transactions across order and vendor aggregates.
	// Every lifecycle transition uses one: the order mutation and the vendor
	// metrics recomputation share a single atomic boundary.
	UoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
	}

	// UoWFactory creates new unit of work instances for transition operations.
	UoWFactory interface {
		Create() UoW
	}

	// SnapshotUoW manages transactions for the performance history job.
	SnapshotUoW interface {
		TxManager
		VendorRepoFactory
		SnapshotRepoFactory
	}

	// SnapshotUoWFactory creates new snapshot unit of work instances.
	SnapshotUoWFactory interface {
		Create() SnapshotUoW
	}
)
