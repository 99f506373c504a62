package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/response"
)

type ReportHandler interface {
	// Per-status totals for one date
	Summary(w http.ResponseWriter, r *http.Request)

	// Daily, monthly or yearly report as JSON
	Generate(w http.ResponseWriter, r *http.Request)

	// Spreadsheet download
	Export(w http.ResponseWriter, r *http.Request)

	// Single-day print view
	Print(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Summary handles GET /attendance/summary
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.reportService.Summarize(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sum)
}

// Generate handles GET /attendance/reports
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := report.ReportRequest{
		Mode: query.Get("mode"),
		Date: query.Get("date"),
	}

	rep, err := h.reportService.GenerateReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// Export handles GET /attendance/reports/export
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := report.ExportRequest{
		ReportRequest: report.ReportRequest{
			Mode: query.Get("mode"),
			Date: query.Get("date"),
		},
		Format: query.Get("format"),
	}

	art, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, art.FileName, art.ContentType, art.Body, false)
}

// Print handles GET /attendance/reports/print
func (h *reportHandlerImpl) Print(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := report.PrintRequest{
		Date:   query.Get("date"),
		Format: query.Get("format"),
	}

	art, err := h.reportService.Print(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, art.FileName, art.ContentType, art.Body, true)
}
