package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/officedesk/backoffice-go/internal/domain/attendance"
	"github.com/officedesk/backoffice-go/internal/pkg/database"
)

const pgForeignKeyViolation = "23503"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.Repository.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, rec.EmployeeID, rec.Date, rec.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return attendance.ErrUnknownEmployee
		}
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id, date, status, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1 AND date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // unrecorded day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id, date, status, created_at, updated_at
		FROM attendance
		WHERE date = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByStatus implements attendance.Repository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, employeeID int64, month, year int) (map[string]int, error) {
	q := GetQuerier(ctx, a.db)

	from, to := monthRange(year, month)
	query := `
		SELECT status, COUNT(date)
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// CountByStatusAll implements attendance.Repository.
func (a *attendanceRepository) CountByStatusAll(ctx context.Context, month, year int) (map[int64]map[string]int, error) {
	q := GetQuerier(ctx, a.db)

	from, to := monthRange(year, month)
	query := `
		SELECT employee_id, status, COUNT(date)
		FROM attendance
		WHERE date >= $1 AND date < $2
		GROUP BY employee_id, status
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance for all employees: %w", err)
	}
	defer rows.Close()

	summary := make(map[int64]map[string]int)
	for rows.Next() {
		var employeeID int64
		var status string
		var count int
		if err := rows.Scan(&employeeID, &status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		if summary[employeeID] == nil {
			summary[employeeID] = make(map[string]int)
		}
		summary[employeeID][status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

// DeleteOlderThan implements attendance.Repository.
func (a *attendanceRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE date < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete aged attendance records: %w", err)
	}

	return tag.RowsAffected(), nil
}

// monthRange returns the half-open interval [first day, first day of the
// next month). Range queries keep the date index usable.
func monthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
