package commands

import (
	"errors"
	"time"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrRecordPerformanceSnapshotsCommandIsNotConstructed = errors.New(
	"RecordPerformanceSnapshotsCommand must be created via NewRecordPerformanceSnapshotsCommand constructor",
)

// RecordPerformanceSnapshotsCommand represents a request to capture the
// current performance metrics of every vendor into the history table.
type RecordPerformanceSnapshotsCommand struct { //nolint:recvcheck //using for validation
	takenAt time.Time

	guard guard.ConstructorGuard
}

// NewRecordPerformanceSnapshotsCommand creates a command to record a round of
// performance snapshots stamped with the given time.
func NewRecordPerformanceSnapshotsCommand(takenAt time.Time) (RecordPerformanceSnapshotsCommand, error) {
	if takenAt.IsZero() {
		return RecordPerformanceSnapshotsCommand{}, errs.NewValueIsRequiredError("takenAt")
	}

	return RecordPerformanceSnapshotsCommand{
		takenAt: takenAt,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPerformanceSnapshotsCommand) Validate() error {
	return c.guard.Validate(ErrRecordPerformanceSnapshotsCommandIsNotConstructed)
}

// TakenAt returns the timestamp the snapshots are recorded at.
func (c RecordPerformanceSnapshotsCommand) TakenAt() time.Time {
	return c.takenAt
}
