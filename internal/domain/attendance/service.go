package attendance

import (
	"context"
	"time"
)

// Service defines business logic for the attendance ledger. Callers supply
// every date explicitly; the ledger never reads the system clock.
type Service interface {
	// RecordDay records or overwrites one employee's status for a day.
	RecordDay(ctx context.Context, employeeID int64, date time.Time, status string) error

	// RecordBatch applies RecordDay per entry, collecting per-entry
	// failures instead of aborting the batch. Entries without their own
	// date use defaultDate.
	RecordBatch(ctx context.Context, defaultDate time.Time, entries []BatchEntry) (BatchResult, error)

	// GetEmployeeDay returns the recorded status for one employee and day,
	// or nil when the day is unrecorded.
	GetEmployeeDay(ctx context.Context, employeeID int64, date time.Time) (*Record, error)

	// GetDay returns every recorded status for a day.
	GetDay(ctx context.Context, date time.Time) ([]DayStatus, error)

	// MonthCounts returns status -> day count for one employee and month,
	// zero-filled over the configured status set.
	MonthCounts(ctx context.Context, employeeID int64, month, year int) (map[string]int, error)

	// MonthCountsAll returns per-employee status counts for a month.
	MonthCountsAll(ctx context.Context, month, year int) (map[int64]map[string]int, error)

	// Roster returns the employee directory together with the day's
	// recorded statuses, marking unrecorded employees as such.
	Roster(ctx context.Context, date time.Time) (RosterResponse, error)

	// PruneOlderThan deletes ledger records dated before cutoff.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Statuses exposes the configured status set.
	Statuses() StatusSet
}
