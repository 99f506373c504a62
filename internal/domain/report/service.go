package report

import (
	"context"
)

// ReportService builds reports from the stored roster and attendance.
type ReportService interface {
	// GenerateReport returns the day, month or year window around req.Date
	GenerateReport(ctx context.Context, req ReportRequest) (Report, error)

	// Summarize returns the totals for a single date
	Summarize(ctx context.Context, date string) (DaySummary, error)

	// Export renders a monthly or yearly spreadsheet
	Export(ctx context.Context, req ExportRequest) (Artifact, error)

	// Print renders a single-day print view
	Print(ctx context.Context, req PrintRequest) (Artifact, error)
}
