package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officedesk/backoffice-go/internal/domain/attendance"
	"github.com/officedesk/backoffice-go/internal/domain/payroll"
	"github.com/officedesk/backoffice-go/internal/handler/http/response"
)

// stubLedger lets each test pin the behavior it exercises.
type stubLedger struct {
	recordBatchFn func(ctx context.Context, defaultDate time.Time, entries []attendance.BatchEntry) (attendance.BatchResult, error)
	monthCountsFn func(ctx context.Context, employeeID int64, month, year int) (map[string]int, error)
	rosterFn      func(ctx context.Context, date time.Time) (attendance.RosterResponse, error)
	pruneFn       func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (s *stubLedger) RecordDay(ctx context.Context, employeeID int64, date time.Time, status string) error {
	return nil
}

func (s *stubLedger) RecordBatch(ctx context.Context, defaultDate time.Time, entries []attendance.BatchEntry) (attendance.BatchResult, error) {
	return s.recordBatchFn(ctx, defaultDate, entries)
}

func (s *stubLedger) GetEmployeeDay(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (s *stubLedger) GetDay(ctx context.Context, date time.Time) ([]attendance.DayStatus, error) {
	return nil, nil
}

func (s *stubLedger) MonthCounts(ctx context.Context, employeeID int64, month, year int) (map[string]int, error) {
	return s.monthCountsFn(ctx, employeeID, month, year)
}

func (s *stubLedger) MonthCountsAll(ctx context.Context, month, year int) (map[int64]map[string]int, error) {
	return nil, nil
}

func (s *stubLedger) Roster(ctx context.Context, date time.Time) (attendance.RosterResponse, error) {
	return s.rosterFn(ctx, date)
}

func (s *stubLedger) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.pruneFn(ctx, cutoff)
}

func (s *stubLedger) Statuses() attendance.StatusSet {
	return attendance.DefaultStatusSet()
}

func newAttendanceTestRouter(handler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", handler.Roster)
		r.Post("/", handler.Record)
		r.Put("/date/{date}", handler.RecordForDate)
		r.Get("/{id}/summary/{year}/{month}", handler.SummaryByEmployee)
		r.Delete("/retention", handler.Prune)
	})
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestAttendanceHandler_Record_Success(t *testing.T) {
	ledger := &stubLedger{
		recordBatchFn: func(ctx context.Context, defaultDate time.Time, entries []attendance.BatchEntry) (attendance.BatchResult, error) {
			return attendance.BatchResult{Recorded: len(entries)}, nil
		},
	}
	router := newAttendanceTestRouter(NewAttendanceHandler(ledger, 11))

	body := `{"date": "2024-04-10", "attendance": [
		{"employee_id": 1, "status": "Present"},
		{"employee_id": 2, "status": "Absent"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/attendance/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestAttendanceHandler_Record_PartialFailure(t *testing.T) {
	ledger := &stubLedger{
		recordBatchFn: func(ctx context.Context, defaultDate time.Time, entries []attendance.BatchEntry) (attendance.BatchResult, error) {
			return attendance.BatchResult{
				Recorded: 4,
				Errors:   []attendance.EntryError{{EmployeeID: 5, Error: "status must be one of: Present, Absent, Holiday, On Leave, Half Day"}},
			}, nil
		},
	}
	router := newAttendanceTestRouter(NewAttendanceHandler(ledger, 11))

	body := `{"date": "2024-04-10", "attendance": [{"employee_id": 1, "status": "Present"}]}`
	req := httptest.NewRequest(http.MethodPost, "/attendance/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Data)

	// Partial results ride along with the failure response.
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result attendance.BatchResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 4, result.Recorded)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, int64(5), result.Errors[0].EmployeeID)
}

func TestAttendanceHandler_Record_MalformedJSON(t *testing.T) {
	router := newAttendanceTestRouter(NewAttendanceHandler(&stubLedger{}, 11))

	req := httptest.NewRequest(http.MethodPost, "/attendance/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Record_EmptyBatch(t *testing.T) {
	router := newAttendanceTestRouter(NewAttendanceHandler(&stubLedger{}, 11))

	req := httptest.NewRequest(http.MethodPost, "/attendance/", strings.NewReader(`{"attendance": []}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestAttendanceHandler_RecordForDate_InvalidDate(t *testing.T) {
	router := newAttendanceTestRouter(NewAttendanceHandler(&stubLedger{}, 11))

	req := httptest.NewRequest(http.MethodPut, "/attendance/date/10-04-2024", strings.NewReader(`{"attendance": [{"employee_id": 1, "status": "Present"}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_RecordForDate_UsesPathDate(t *testing.T) {
	var gotDate time.Time
	ledger := &stubLedger{
		recordBatchFn: func(ctx context.Context, defaultDate time.Time, entries []attendance.BatchEntry) (attendance.BatchResult, error) {
			gotDate = defaultDate
			return attendance.BatchResult{Recorded: len(entries)}, nil
		},
	}
	router := newAttendanceTestRouter(NewAttendanceHandler(ledger, 11))

	req := httptest.NewRequest(http.MethodPut, "/attendance/date/2024-03-05", strings.NewReader(`{"attendance": [{"employee_id": 1, "status": "Present"}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "2024-03-05", gotDate.Format(attendance.DateLayout))
}

func TestAttendanceHandler_SummaryByEmployee(t *testing.T) {
	ledger := &stubLedger{
		monthCountsFn: func(ctx context.Context, employeeID int64, month, year int) (map[string]int, error) {
			return map[string]int{"Present": 20, "Absent": 2, "Holiday": 0, "On Leave": 0, "Half Day": 0}, nil
		},
	}
	router := newAttendanceTestRouter(NewAttendanceHandler(ledger, 11))

	req := httptest.NewRequest(http.MethodGet, "/attendance/1/summary/2024/4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestAttendanceHandler_SummaryByEmployee_InvalidMonth(t *testing.T) {
	ledger := &stubLedger{
		monthCountsFn: func(ctx context.Context, employeeID int64, month, year int) (map[string]int, error) {
			return nil, attendance.ErrInvalidMonth
		},
	}
	router := newAttendanceTestRouter(NewAttendanceHandler(ledger, 11))

	req := httptest.NewRequest(http.MethodGet, "/attendance/1/summary/2024/13", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Prune_UsesRetentionWindow(t *testing.T) {
	var gotCutoff time.Time
	ledger := &stubLedger{
		pruneFn: func(ctx context.Context, cutoff time.Time) (int64, error) {
			gotCutoff = cutoff
			return 7, nil
		},
	}
	handler := &attendanceHandlerImpl{
		attendanceService: ledger,
		retentionMonths:   11,
		now: func() time.Time {
			return time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
		},
	}
	router := newAttendanceTestRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/attendance/retention", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), gotCutoff)
}

// stubPayroll pins ComputeSalary behavior per test.
type stubPayroll struct {
	computeFn func(ctx context.Context, employeeID int64, month, year int) (payroll.SalaryResponse, error)
	summaryFn func(ctx context.Context, employeeID int64, month, year int) (payroll.SummaryResponse, error)
}

func (s *stubPayroll) ComputeSalary(ctx context.Context, employeeID int64, month, year int) (payroll.SalaryResponse, error) {
	return s.computeFn(ctx, employeeID, month, year)
}

func (s *stubPayroll) MonthlySummary(ctx context.Context, employeeID int64, month, year int) (payroll.SummaryResponse, error) {
	return s.summaryFn(ctx, employeeID, month, year)
}

func newSalaryTestRouter(handler SalaryHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/salary", func(r chi.Router) {
		r.Get("/{id}/{year}/{month}", handler.Get)
		r.Get("/{id}/{year}/{month}/summary", handler.Summary)
	})
	return r
}

func TestSalaryHandler_Get_Success(t *testing.T) {
	svc := &stubPayroll{
		computeFn: func(ctx context.Context, employeeID int64, month, year int) (payroll.SalaryResponse, error) {
			return payroll.SalaryResponse{
				EmployeeID:    employeeID,
				Month:         month,
				Year:          year,
				DaysInMonth:   30,
				PayableSalary: "27500.00",
			}, nil
		},
	}
	router := newSalaryTestRouter(NewSalaryHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/salary/1/2024/4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"payable_salary":"27500.00"`)
}

func TestSalaryHandler_Get_IncompleteMonth(t *testing.T) {
	svc := &stubPayroll{
		computeFn: func(ctx context.Context, employeeID int64, month, year int) (payroll.SalaryResponse, error) {
			return payroll.SalaryResponse{}, payroll.ErrIncompleteAttendance
		},
	}
	router := newSalaryTestRouter(NewSalaryHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/salary/1/2024/4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Premature checking for salary: month not fully recorded", resp.Error.Message)
}

func TestSalaryHandler_Get_InvalidEmployeeID(t *testing.T) {
	router := newSalaryTestRouter(NewSalaryHandler(&stubPayroll{}))

	req := httptest.NewRequest(http.MethodGet, "/salary/abc/2024/4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
