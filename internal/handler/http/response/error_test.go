package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/officedesk/backoffice-go/internal/domain/attendance"
	"github.com/officedesk/backoffice-go/internal/domain/auth"
	"github.com/officedesk/backoffice-go/internal/domain/employee"
	"github.com/officedesk/backoffice-go/internal/domain/payroll"
	"github.com/officedesk/backoffice-go/internal/domain/stock"
	"github.com/officedesk/backoffice-go/internal/pkg/validator"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation errors", validator.ValidationErrors{{Field: "status", Message: "invalid"}}, http.StatusUnprocessableEntity},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"email exists", auth.ErrEmailExists, http.StatusConflict},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"unknown employee", attendance.ErrUnknownEmployee, http.StatusNotFound},
		{"invalid month", attendance.ErrInvalidMonth, http.StatusBadRequest},
		{"incomplete attendance", payroll.ErrIncompleteAttendance, http.StatusBadRequest},
		{"stock item not found", stock.ErrItemNotFound, http.StatusNotFound},
		{"negative stock quantity", stock.ErrNegativeQuantity, http.StatusBadRequest},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)
		assert.Equal(t, c.want, rec.Code, c.name)
	}
}
