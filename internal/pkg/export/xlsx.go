package export

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet written by XLSX.
const SheetName = "Attendance"

// XLSX writes the flattened report rows to a one-sheet workbook.
func XLSX(rep report.Report) (report.Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return report.Artifact{}, fmt.Errorf("failed to create header style: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return report.Artifact{}, fmt.Errorf("failed to create summary style: %w", err)
	}

	header := report.Header()
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", headerStyle); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range rep.Rows() {
		line := i + 2
		start, _ := excelize.CoordinatesToCellName(1, line)
		end, _ := excelize.CoordinatesToCellName(len(header), line)

		cells := row.Cells()
		if err := f.SetSheetRow(SheetName, start, &cells); err != nil {
			return report.Artifact{}, fmt.Errorf("failed to write row %d: %w", line, err)
		}
		if row.IsSummary() {
			if err := f.SetCellStyle(SheetName, start, end, summaryStyle); err != nil {
				return report.Artifact{}, fmt.Errorf("failed to style row %d: %w", line, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 16); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "C", "D", 32); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.Artifact{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return report.Artifact{
		FileName:    rep.FileName() + ".xlsx",
		ContentType: ContentTypeXLSX,
		Body:        buf.Bytes(),
	}, nil
}
