package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/officedesk/backoffice-go/internal/domain/attendance"
)

// RetentionJob prunes attendance records older than the configured number
// of months. It owns the clock; the ledger itself never reads it.
type RetentionJob struct {
	ledger attendance.Service
	months int
	now    func() time.Time
}

func NewRetentionJob(ledger attendance.Service, months int) *RetentionJob {
	return &RetentionJob{
		ledger: ledger,
		months: months,
		now:    time.Now,
	}
}

// Run deletes ledger records dated before the retention cutoff.
func (j *RetentionJob) Run(ctx context.Context) error {
	cutoff := j.now().AddDate(0, -j.months, 0)

	deleted, err := j.ledger.PruneOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		slog.Info("Pruned aged attendance records", "deleted", deleted, "cutoff", cutoff.Format(attendance.DateLayout))
	}
	return nil
}
