package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines data access for the employee directory. The payroll
// calculator only ever reads BaseSalary through it.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error

	// BaseSalary returns the monthly base salary for an employee.
	BaseSalary(ctx context.Context, id int64) (decimal.Decimal, error)
}
