package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/officedesk/backoffice-go/internal/domain/payroll"
	"github.com/officedesk/backoffice-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	payrollService payroll.Service
}

func NewSalaryHandler(payrollService payroll.Service) SalaryHandler {
	return &salaryHandlerImpl{payrollService: payrollService}
}

// Get implements SalaryHandler. A salary figure is only available once
// every calendar day of the month has a recorded status.
func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || employeeID <= 0 {
		response.BadRequest(w, "employee id must be a positive integer", nil)
		return
	}

	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ComputeSalary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements SalaryHandler.
func (h *salaryHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || employeeID <= 0 {
		response.BadRequest(w, "employee id must be a positive integer", nil)
		return
	}

	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.MonthlySummary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
