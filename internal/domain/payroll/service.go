package payroll

import (
	"context"
)

// Service derives payable salary from the attendance ledger and the
// employee directory. Results are computed on demand, never cached.
type Service interface {
	// ComputeSalary computes the payable salary for one employee and month.
	// It fails with employee.ErrEmployeeNotFound for unknown employees and
	// ErrIncompleteAttendance unless every calendar day of the month has a
	// recorded status.
	ComputeSalary(ctx context.Context, employeeID int64, month, year int) (SalaryResponse, error)

	// MonthlySummary returns the month's per-status counts for one
	// employee, with recorded and unrecorded day totals.
	MonthlySummary(ctx context.Context, employeeID int64, month, year int) (SummaryResponse, error)
}
