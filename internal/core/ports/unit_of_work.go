package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Every order transition and its coupled vendor metrics recomputation run
// inside a single unit of work: both commit together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// VendorRepository returns a VendorRepository bound to the current transaction.
	VendorRepository() VendorRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// PerformanceSnapshotRepository returns a PerformanceSnapshotRepository
	// bound to the current transaction.
	PerformanceSnapshotRepository() PerformanceSnapshotRepository
}
