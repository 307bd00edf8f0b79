package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/officedesk/backoffice-go/internal/domain/attendance"
	"github.com/officedesk/backoffice-go/internal/domain/employee"
	"github.com/officedesk/backoffice-go/internal/domain/payroll"
)

type payrollServiceImpl struct {
	ledger       attendance.Service
	employeeRepo employee.Repository
}

func NewPayrollService(
	ledger attendance.Service,
	employeeRepo employee.Repository,
) payroll.Service {
	return &payrollServiceImpl{
		ledger:       ledger,
		employeeRepo: employeeRepo,
	}
}

// ComputeSalary implements payroll.Service.
//
// payable = base - perDiem * sum(weight(status) * count(status)), where
// perDiem = base / daysInMonth. Division stays at full precision through
// the deduction terms; rounding to two places happens once, on the result.
func (s *payrollServiceImpl) ComputeSalary(ctx context.Context, employeeID int64, month, year int) (payroll.SalaryResponse, error) {
	base, err := s.employeeRepo.BaseSalary(ctx, employeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	counts, err := s.ledger.MonthCounts(ctx, employeeID, month, year)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	days := payroll.DaysInMonth(year, month)

	recorded := 0
	for _, count := range counts {
		recorded += count
	}
	if recorded != days {
		return payroll.SalaryResponse{}, payroll.ErrIncompleteAttendance
	}

	perDiem := base.Div(decimal.NewFromInt(int64(days)))

	statuses := s.ledger.Statuses()
	deduction := decimal.Zero
	for status, count := range counts {
		weight := statuses.Weight(status)
		if weight.IsZero() || count == 0 {
			continue
		}
		deduction = deduction.Add(perDiem.Mul(weight).Mul(decimal.NewFromInt(int64(count))))
	}

	payable := base.Sub(deduction).Round(2)

	return payroll.SalaryResponse{
		EmployeeID:    employeeID,
		Month:         month,
		Year:          year,
		DaysInMonth:   days,
		PayableSalary: payable.StringFixed(2),
	}, nil
}

// MonthlySummary implements payroll.Service.
func (s *payrollServiceImpl) MonthlySummary(ctx context.Context, employeeID int64, month, year int) (payroll.SummaryResponse, error) {
	// Unknown employees get a not-found, not an all-zero summary.
	if _, err := s.employeeRepo.BaseSalary(ctx, employeeID); err != nil {
		return payroll.SummaryResponse{}, err
	}

	counts, err := s.ledger.MonthCounts(ctx, employeeID, month, year)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	days := payroll.DaysInMonth(year, month)

	recorded := 0
	for _, count := range counts {
		recorded += count
	}

	return payroll.SummaryResponse{
		EmployeeID:     employeeID,
		Month:          month,
		Year:           year,
		DaysInMonth:    days,
		Counts:         counts,
		RecordedDays:   recorded,
		UnrecordedDays: days - recorded,
	}, nil
}
