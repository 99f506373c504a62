// Package export renders a generated report into downloadable or printable
// documents. Every renderer reads the same report.Report value; none of them
// aggregates attendance on its own.
package export

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypePDF  = "application/pdf"
	ContentTypeText = "text/plain; charset=utf-8"
)

// Render dispatches to the renderer for format.
func Render(rep report.Report, format report.Format) (report.Artifact, error) {
	switch format {
	case report.FormatXLSX:
		return XLSX(rep)
	case report.FormatCSV:
		return CSV(rep)
	case report.FormatHTML:
		return HTML(rep)
	case report.FormatPDF:
		return PDF(rep)
	case report.FormatText:
		return Text(rep)
	}
	return report.Artifact{}, fmt.Errorf("%w: %q", report.ErrInvalidFormat, format)
}
