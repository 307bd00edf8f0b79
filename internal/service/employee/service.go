package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/officedesk/backoffice-go/internal/domain/employee"
)

type employeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// List implements employee.Service.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// Get implements employee.Service.
func (s *employeeServiceImpl) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Create implements employee.Service.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Validate guarantees both parses succeed.
	dateOfJoining, _ := time.Parse("2006-01-02", req.DateOfJoining)
	baseSalary, _ := decimal.NewFromString(req.BaseSalary)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:          req.Name,
		Gender:        req.Gender,
		PhoneNumber:   req.PhoneNumber,
		Role:          req.Role,
		Address:       req.Address,
		NationalID:    req.NationalID,
		DateOfJoining: dateOfJoining,
		BaseSalary:    baseSalary,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Delete implements employee.Service.
func (s *employeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}
