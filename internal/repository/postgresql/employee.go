package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/officedesk/backoffice-go/internal/domain/employee"
	"github.com/officedesk/backoffice-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.Repository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT employee_id, name, gender, phone_number, role, address,
			   national_id, date_of_joining, base_salary, created_at, updated_at
		FROM employees
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Gender, &emp.PhoneNumber, &emp.Role,
			&emp.Address, &emp.NationalID, &emp.DateOfJoining, &emp.BaseSalary,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT employee_id, name, gender, phone_number, role, address,
			   national_id, date_of_joining, base_salary, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Gender, &emp.PhoneNumber, &emp.Role,
		&emp.Address, &emp.NationalID, &emp.DateOfJoining, &emp.BaseSalary,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// Create implements employee.Repository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			name, gender, phone_number, role, address,
			national_id, date_of_joining, base_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING employee_id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.Name,
		newEmployee.Gender,
		newEmployee.PhoneNumber,
		newEmployee.Role,
		newEmployee.Address,
		newEmployee.NationalID,
		newEmployee.DateOfJoining,
		newEmployee.BaseSalary,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Delete implements employee.Repository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// BaseSalary implements employee.Repository.
func (e *employeeRepositoryImpl) BaseSalary(ctx context.Context, id int64) (decimal.Decimal, error) {
	q := GetQuerier(ctx, e.db)

	var salary decimal.Decimal
	err := q.QueryRow(ctx, `SELECT base_salary FROM employees WHERE employee_id = $1`, id).Scan(&salary)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Decimal{}, employee.ErrEmployeeNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("failed to get base salary: %w", err)
	}

	return salary, nil
}
