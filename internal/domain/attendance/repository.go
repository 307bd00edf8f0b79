package attendance

import (
	"context"
	"time"
)

// Repository defines data access for the attendance ledger.
type Repository interface {
	// Upsert inserts a record or, when (employee_id, date) already exists,
	// replaces its status. The conflict target is the table's primary key,
	// so concurrent submissions for the same day cannot duplicate rows;
	// last writer wins.
	Upsert(ctx context.Context, rec Record) error

	// GetByEmployeeAndDate returns the record for one employee and day,
	// or nil when the day is unrecorded.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Record, error)

	// ListByDate returns all records for a calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// CountByStatus aggregates one employee's records in a month into
	// status -> day count. Months are always qualified by year.
	CountByStatus(ctx context.Context, employeeID int64, month, year int) (map[string]int, error)

	// CountByStatusAll aggregates a month's records for every employee.
	CountByStatusAll(ctx context.Context, month, year int) (map[int64]map[string]int, error)

	// DeleteOlderThan removes records dated strictly before cutoff and
	// returns how many were deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
