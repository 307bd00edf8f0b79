package employee

import (
	"github.com/shopspring/decimal"

	"github.com/officedesk/backoffice-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string  `json:"name"`
	Gender        string  `json:"gender"`
	PhoneNumber   string  `json:"phone_number"`
	Role          string  `json:"role"`
	Address       *string `json:"address,omitempty"`
	NationalID    string  `json:"national_id"`
	DateOfJoining string  `json:"date_of_joining"`
	BaseSalary    string  `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) || len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required and must not exceed 100 characters",
		})
	}

	if !validator.IsInSlice(r.Gender, Genders) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of Male, Female, Other",
		})
	}

	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 10 digits",
		})
	}

	if validator.IsEmpty(r.Role) || len(r.Role) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required and must not exceed 100 characters",
		})
	}

	if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must be 12 digits",
		})
	}

	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}

	salary, err := decimal.NewFromString(r.BaseSalary)
	if err != nil || !salary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be a positive decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID            int64   `json:"employee_id"`
	Name          string  `json:"name"`
	Gender        string  `json:"gender"`
	PhoneNumber   string  `json:"phone_number"`
	Role          string  `json:"role"`
	Address       *string `json:"address,omitempty"`
	NationalID    string  `json:"national_id"`
	DateOfJoining string  `json:"date_of_joining"`
	BaseSalary    string  `json:"base_salary"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Gender:        e.Gender,
		PhoneNumber:   e.PhoneNumber,
		Role:          e.Role,
		Address:       e.Address,
		NationalID:    e.NationalID,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		BaseSalary:    e.BaseSalary.StringFixed(2),
	}
}
