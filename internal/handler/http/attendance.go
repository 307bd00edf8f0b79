package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/officedesk/backoffice-go/internal/domain/attendance"
	"github.com/officedesk/backoffice-go/internal/handler/http/response"
	"github.com/officedesk/backoffice-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	Roster(w http.ResponseWriter, r *http.Request)
	Record(w http.ResponseWriter, r *http.Request)
	RecordForDate(w http.ResponseWriter, r *http.Request)
	SummaryAll(w http.ResponseWriter, r *http.Request)
	SummaryByEmployee(w http.ResponseWriter, r *http.Request)
	Prune(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
	retentionMonths   int

	// The handler owns the clock; the ledger only ever sees explicit dates.
	now func() time.Time
}

func NewAttendanceHandler(attendanceService attendance.Service, retentionMonths int) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		retentionMonths:   retentionMonths,
		now:               time.Now,
	}
}

// Roster implements AttendanceHandler.
func (h *attendanceHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	date := h.now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, ok := validator.IsValidDate(dateStr)
		if !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	result, err := h.attendanceService.Roster(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance batch", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date := h.now()
	if req.Date != nil {
		// Validate already checked the format.
		date, _ = time.Parse(attendance.DateLayout, *req.Date)
	}

	h.recordBatch(w, r, date, req.Attendance)
}

// RecordForDate implements AttendanceHandler. It is the same upsert as
// Record but targets an explicit, typically past, date.
func (h *attendanceHandlerImpl) RecordForDate(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	var req attendance.RecordBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance batch", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	h.recordBatch(w, r, date, req.Attendance)
}

func (h *attendanceHandlerImpl) recordBatch(w http.ResponseWriter, r *http.Request, date time.Time, entries []attendance.BatchEntry) {
	result, err := h.attendanceService.RecordBatch(r.Context(), date, entries)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if len(result.Errors) > 0 {
		response.BadRequestWithData(w, "Validation errors in some records", result)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

// SummaryAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) SummaryAll(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	employees, err := h.attendanceService.MonthCountsAll(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.AllMonthCountsResponse{
		Month:     month,
		Year:      year,
		Employees: employees,
	})
}

// SummaryByEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) SummaryByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || employeeID <= 0 {
		response.BadRequest(w, "employee id must be a positive integer", nil)
		return
	}

	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	counts, err := h.attendanceService.MonthCounts(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.MonthCountsResponse{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		Counts:     counts,
	})
}

// Prune implements AttendanceHandler.
func (h *attendanceHandlerImpl) Prune(w http.ResponseWriter, r *http.Request) {
	cutoff := h.now().AddDate(0, -h.retentionMonths, 0)

	deleted, err := h.attendanceService.PruneOlderThan(r.Context(), cutoff)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Old attendance records deleted successfully", map[string]int64{
		"deleted": deleted,
	})
}

// monthYearParams parses the {year}/{month} path segments. Month queries
// always require both; a month number alone is ambiguous across years.
func monthYearParams(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return 0, 0, false
	}

	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "month must be an integer", nil)
		return 0, 0, false
	}

	return month, year, true
}
