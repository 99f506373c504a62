package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/ledger"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	staff.StaffRepository
	attendance.AttendanceRepository
}

// GenerateReport implements report.ReportService.
func (r *ReportServiceImpl) GenerateReport(ctx context.Context, req report.ReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}
	mode, _ := report.ParseMode(req.Mode)

	start, end := window(mode, req.Date)
	roster, l, err := r.load(ctx, attendance.ListAttendanceFilter{StartDate: start, EndDate: end})
	if err != nil {
		return report.Report{}, err
	}

	return ledger.Generate(l, roster, mode, req.Date)
}

// Summarize implements report.ReportService.
func (r *ReportServiceImpl) Summarize(ctx context.Context, date string) (report.DaySummary, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return report.DaySummary{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	rows, err := r.AttendanceRepository.List(ctx, attendance.ListAttendanceFilter{StartDate: date, EndDate: date})
	if err != nil {
		return report.DaySummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return ledger.FromEntries(entries(rows)).SummarizeDate(date), nil
}

// Export implements report.ReportService.
func (r *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.Artifact, error) {
	if err := req.Validate(); err != nil {
		return report.Artifact{}, err
	}

	rep, err := r.GenerateReport(ctx, req.ReportRequest)
	if err != nil {
		return report.Artifact{}, err
	}

	return export.Render(rep, report.Format(req.Format))
}

// Print implements report.ReportService.
func (r *ReportServiceImpl) Print(ctx context.Context, req report.PrintRequest) (report.Artifact, error) {
	if err := req.Validate(); err != nil {
		return report.Artifact{}, err
	}

	rep, err := r.GenerateReport(ctx, report.ReportRequest{Mode: string(report.ModeDaily), Date: req.Date})
	if err != nil {
		return report.Artifact{}, err
	}

	return export.Render(rep, report.Format(req.Format))
}

// load fetches the roster and the attendance rows in the window concurrently.
func (r *ReportServiceImpl) load(ctx context.Context, filter attendance.ListAttendanceFilter) ([]string, *ledger.Ledger, error) {
	var (
		members []staff.Staff
		rows    []attendance.Attendance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = r.StaffRepository.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list staff: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rows, err = r.AttendanceRepository.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	roster := make([]string, len(members))
	for i, m := range members {
		roster[i] = m.Name
	}
	return roster, ledger.FromEntries(entries(rows)), nil
}

// window returns the inclusive date bounds of the report period containing date.
func window(mode report.Mode, date string) (string, string) {
	anchor, err := time.Parse(validator.DateLayout, date)
	if err != nil {
		return date, date
	}

	var start, end time.Time
	switch mode {
	case report.ModeMonthly:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case report.ModeYearly:
		start = time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		start, end = anchor, anchor
	}
	return start.Format(validator.DateLayout), end.Format(validator.DateLayout)
}

func entries(rows []attendance.Attendance) []attendance.Entry {
	out := make([]attendance.Entry, len(rows))
	for i, row := range rows {
		out[i] = row.Entry
	}
	return out
}

func NewReportService(staffRepo staff.StaffRepository, attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		StaffRepository:      staffRepo,
		AttendanceRepository: attendanceRepo,
	}
}
