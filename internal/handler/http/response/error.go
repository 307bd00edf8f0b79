package response

import (
	"errors"
	"net/http"

	"github.com/officedesk/backoffice-go/internal/domain/attendance"
	"github.com/officedesk/backoffice-go/internal/domain/auth"
	"github.com/officedesk/backoffice-go/internal/domain/employee"
	"github.com/officedesk/backoffice-go/internal/domain/payroll"
	"github.com/officedesk/backoffice-go/internal/domain/stock"
	"github.com/officedesk/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrUnknownEmployee):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)
	case errors.Is(err, attendance.ErrInvalidYear):
		BadRequest(w, "Invalid year", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrIncompleteAttendance):
		BadRequest(w, "Premature checking for salary: month not fully recorded", nil)

	// Stock domain errors
	case errors.Is(err, stock.ErrItemNotFound):
		NotFound(w, "Stock item not found")
	case errors.Is(err, stock.ErrNegativeQuantity):
		BadRequest(w, "Stock quantity cannot go negative", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
