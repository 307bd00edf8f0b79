package payroll

import "errors"

var (
	// ErrIncompleteAttendance is returned when a month's recorded days do
	// not cover every calendar day, so no salary figure can be computed yet.
	ErrIncompleteAttendance = errors.New("premature checking for salary: month not fully recorded")
)
