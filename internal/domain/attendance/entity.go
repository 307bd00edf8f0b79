package attendance

import (
	"time"
)

// DateLayout is the wire format for calendar days.
const DateLayout = "2006-01-02"

// Record is one authoritative attendance status for an employee on a
// calendar day. Identity is (EmployeeID, Date); resubmission overwrites
// the status, it never duplicates the row.
type Record struct {
	EmployeeID int64
	Date       time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DateOf normalizes a timestamp to its calendar day at UTC midnight.
// The ledger stores days, not instants.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
