package export

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

// PDF renders the print view as an A4 document.
func PDF(rep report.Report) (report.Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	widths := []float64{60, 40, 90}

	for _, day := range rep.Days {
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, tr("Attendance Report - "+day.Date), "", 1, "C", false, 0, "")
		pdf.Ln(4)

		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range []string{"Employee", "Status", "Reason"} {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(0, 0, 0)
		for _, row := range day.Rows {
			pdf.CellFormat(widths[0], 7, tr(row.Employee), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[1], 7, tr(row.Status), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[2], 7, tr(row.Reason), "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}

		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, tr(day.Summary.Label()), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to render pdf: %w", err)
	}

	return report.Artifact{
		FileName:    rep.FileName() + ".pdf",
		ContentType: ContentTypePDF,
		Body:        buf.Bytes(),
	}, nil
}
