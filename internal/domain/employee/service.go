package employee

import (
	"context"
)

// Service defines business logic for the employee directory.
type Service interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id int64) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}
