package cron

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

// ArchiveJobs writes the finished previous month's spreadsheet into storage.
type ArchiveJobs struct {
	reportSvc report.ReportService
	store     storage.FileStorage
	now       func() time.Time
}

func NewArchiveJobs(reportSvc report.ReportService, store storage.FileStorage) *ArchiveJobs {
	return &ArchiveJobs{
		reportSvc: reportSvc,
		store:     store,
		now:       time.Now,
	}
}

func (j *ArchiveJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("archive_monthly_report", interval, j.ArchivePreviousMonth)
}

// ArchivePreviousMonth exports last month once. Months without attendance and
// months already archived are skipped.
func (j *ArchiveJobs) ArchivePreviousMonth(ctx context.Context) error {
	now := j.now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	date := anchor.Format(validator.DateLayout)

	name := path.Join(anchor.Format("2006"), "Attendance_"+anchor.Format("2006-01")+".xlsx")
	exists, err := j.store.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check archive: %w", err)
	}
	if exists {
		return nil
	}

	art, err := j.reportSvc.Export(ctx, report.ExportRequest{
		ReportRequest: report.ReportRequest{Mode: string(report.ModeMonthly), Date: date},
		Format:        string(report.FormatXLSX),
	})
	if errors.Is(err, report.ErrNoData) {
		slog.Debug("Cron: no attendance to archive", "month", anchor.Format("2006-01"))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", anchor.Format("2006-01"), err)
	}

	stored, err := j.store.Upload(ctx, bytes.NewReader(art.Body), name)
	if err != nil {
		return fmt.Errorf("failed to store archive: %w", err)
	}

	slog.Info("Cron: monthly report archived", "path", j.store.Location(stored))
	return nil
}
