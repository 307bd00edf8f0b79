package attendance

import (
	"github.com/officedesk/backoffice-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// BatchEntry is one employee's submission within a batch. Date, when set,
// overrides the batch-level date for that entry.
type BatchEntry struct {
	EmployeeID int64   `json:"employee_id"`
	Status     string  `json:"status"`
	Date       *string `json:"date,omitempty"`
}

type RecordBatchRequest struct {
	Date       *string      `json:"date,omitempty"`
	Attendance []BatchEntry `json:"attendance"`
}

// Validate checks the request shape. Per-entry validation happens in the
// service so one malformed entry does not block the rest of the roster.
func (r *RecordBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Attendance) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance",
			Message: "attendance must contain at least one entry",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EntryError reports a rejected batch entry.
type EntryError struct {
	EmployeeID int64  `json:"employee_id"`
	Error      string `json:"error"`
}

// BatchResult is the partial-success report for a batch submission.
type BatchResult struct {
	Recorded int          `json:"recorded"`
	Errors   []EntryError `json:"errors,omitempty"`
}

// DayStatus is a recorded status for one employee on the queried day.
type DayStatus struct {
	EmployeeID int64  `json:"employee_id"`
	Status     string `json:"status"`
}

// RosterEntry pairs a directory employee with that day's status. Recorded
// distinguishes an explicit status from an unrecorded day; unrecorded days
// are never defaulted to a status here.
type RosterEntry struct {
	EmployeeID int64   `json:"employee_id"`
	Name       string  `json:"name"`
	Status     *string `json:"status,omitempty"`
	Recorded   bool    `json:"recorded"`
}

type RosterResponse struct {
	Date    string        `json:"date"`
	Entries []RosterEntry `json:"entries"`
}

// MonthCountsResponse maps status category to the number of days recorded
// with it for one employee and month.
type MonthCountsResponse struct {
	EmployeeID int64          `json:"employee_id"`
	Month      int            `json:"month"`
	Year       int            `json:"year"`
	Counts     map[string]int `json:"counts"`
}

type AllMonthCountsResponse struct {
	Month     int                      `json:"month"`
	Year      int                      `json:"year"`
	Employees map[int64]map[string]int `json:"employees"`
}
