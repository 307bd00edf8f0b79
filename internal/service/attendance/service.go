package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/officedesk/backoffice-go/internal/domain/attendance"
	"github.com/officedesk/backoffice-go/internal/domain/employee"
	"github.com/officedesk/backoffice-go/internal/pkg/validator"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	statuses       attendance.StatusSet
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	statuses attendance.StatusSet,
) attendance.Service {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		statuses:       statuses,
	}
}

// Statuses implements attendance.Service.
func (s *attendanceServiceImpl) Statuses() attendance.StatusSet {
	return s.statuses
}

// RecordDay implements attendance.Service.
func (s *attendanceServiceImpl) RecordDay(ctx context.Context, employeeID int64, date time.Time, status string) error {
	if err := s.validateEntry(employeeID, status); err != nil {
		return err
	}

	return s.attendanceRepo.Upsert(ctx, attendance.Record{
		EmployeeID: employeeID,
		Date:       attendance.DateOf(date),
		Status:     status,
	})
}

// RecordBatch implements attendance.Service.
func (s *attendanceServiceImpl) RecordBatch(ctx context.Context, defaultDate time.Time, entries []attendance.BatchEntry) (attendance.BatchResult, error) {
	var result attendance.BatchResult

	for _, entry := range entries {
		date := attendance.DateOf(defaultDate)
		if entry.Date != nil {
			parsed, ok := validator.IsValidDate(*entry.Date)
			if !ok {
				result.Errors = append(result.Errors, attendance.EntryError{
					EmployeeID: entry.EmployeeID,
					Error:      "date must be in YYYY-MM-DD format",
				})
				continue
			}
			date = attendance.DateOf(parsed)
		}

		err := s.RecordDay(ctx, entry.EmployeeID, date, entry.Status)
		if err == nil {
			result.Recorded++
			continue
		}

		// Per-entry problems are reported and the batch continues; an
		// infrastructure failure aborts the whole submission.
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			result.Errors = append(result.Errors, attendance.EntryError{
				EmployeeID: entry.EmployeeID,
				Error:      validationErrs.Error(),
			})
		case errors.Is(err, attendance.ErrUnknownEmployee):
			result.Errors = append(result.Errors, attendance.EntryError{
				EmployeeID: entry.EmployeeID,
				Error:      attendance.ErrUnknownEmployee.Error(),
			})
		default:
			return attendance.BatchResult{}, err
		}
	}

	return result, nil
}

// GetEmployeeDay implements attendance.Service.
func (s *attendanceServiceImpl) GetEmployeeDay(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	return s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, attendance.DateOf(date))
}

// GetDay implements attendance.Service.
func (s *attendanceServiceImpl) GetDay(ctx context.Context, date time.Time) ([]attendance.DayStatus, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, attendance.DateOf(date))
	if err != nil {
		return nil, err
	}

	statuses := make([]attendance.DayStatus, 0, len(records))
	for _, rec := range records {
		statuses = append(statuses, attendance.DayStatus{
			EmployeeID: rec.EmployeeID,
			Status:     rec.Status,
		})
	}

	return statuses, nil
}

// MonthCounts implements attendance.Service.
func (s *attendanceServiceImpl) MonthCounts(ctx context.Context, employeeID int64, month, year int) (map[string]int, error) {
	if err := validateMonthYear(month, year); err != nil {
		return nil, err
	}

	recorded, err := s.attendanceRepo.CountByStatus(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	// Zero-fill over the configured set so an empty month reads as
	// all-zero counts, not an error.
	counts := s.statuses.ZeroCounts()
	for status, count := range recorded {
		counts[status] = count
	}

	return counts, nil
}

// MonthCountsAll implements attendance.Service.
func (s *attendanceServiceImpl) MonthCountsAll(ctx context.Context, month, year int) (map[int64]map[string]int, error) {
	if err := validateMonthYear(month, year); err != nil {
		return nil, err
	}

	recorded, err := s.attendanceRepo.CountByStatusAll(ctx, month, year)
	if err != nil {
		return nil, err
	}

	summary := make(map[int64]map[string]int, len(recorded))
	for employeeID, statusCounts := range recorded {
		counts := s.statuses.ZeroCounts()
		for status, count := range statusCounts {
			counts[status] = count
		}
		summary[employeeID] = counts
	}

	return summary, nil
}

// Roster implements attendance.Service.
func (s *attendanceServiceImpl) Roster(ctx context.Context, date time.Time) (attendance.RosterResponse, error) {
	day := attendance.DateOf(date)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.RosterResponse{}, err
	}

	statuses, err := s.GetDay(ctx, day)
	if err != nil {
		return attendance.RosterResponse{}, err
	}

	recordedStatus := make(map[int64]string, len(statuses))
	for _, ds := range statuses {
		recordedStatus[ds.EmployeeID] = ds.Status
	}

	resp := attendance.RosterResponse{
		Date:    day.Format(attendance.DateLayout),
		Entries: make([]attendance.RosterEntry, 0, len(employees)),
	}
	for _, emp := range employees {
		entry := attendance.RosterEntry{
			EmployeeID: emp.ID,
			Name:       emp.Name,
		}
		if status, ok := recordedStatus[emp.ID]; ok {
			entry.Status = &status
			entry.Recorded = true
		}
		resp.Entries = append(resp.Entries, entry)
	}

	return resp, nil
}

// PruneOlderThan implements attendance.Service.
func (s *attendanceServiceImpl) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.attendanceRepo.DeleteOlderThan(ctx, attendance.DateOf(cutoff))
}

func (s *attendanceServiceImpl) validateEntry(employeeID int64, status string) error {
	var errs validator.ValidationErrors

	if employeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if !s.statuses.Contains(status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("status must be one of: %s", strings.Join(s.statuses.Names(), ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateMonthYear(month, year int) error {
	if month < 1 || month > 12 {
		return attendance.ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return attendance.ErrInvalidYear
	}
	return nil
}
