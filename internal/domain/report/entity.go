package report

import (
	"fmt"
	"strings"
)

const (
	// SummaryEmployee marks the per-day totals row in flattened output.
	SummaryEmployee = "→ Summary"
	// Placeholder fills empty reason cells.
	Placeholder = "-"
)

type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeMonthly Mode = "monthly"
	ModeYearly  Mode = "yearly"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDaily, "single-day", "day":
		return ModeDaily, nil
	case ModeMonthly, "month":
		return ModeMonthly, nil
	case ModeYearly, "year":
		return ModeYearly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Row is one flat report line shared by spreadsheet export and print.
type Row struct {
	Date     string `json:"date" csv:"Date"`
	Employee string `json:"employee" csv:"Employee"`
	Status   string `json:"status" csv:"Status"`
	Reason   string `json:"reason" csv:"Reason"`
}

// Header returns the column names of Row in order.
func Header() []string {
	return []string{"Date", "Employee", "Status", "Reason"}
}

// Cells returns the row as an ordered list of fields.
func (r Row) Cells() []string {
	return []string{r.Date, r.Employee, r.Status, r.Reason}
}

// IsSummary reports whether r is a per-day totals row.
func (r Row) IsSummary() bool {
	return r.Employee == SummaryEmployee
}

// DaySummary holds per-status counts for one date.
type DaySummary struct {
	Present  int `json:"present"`
	Absent   int `json:"absent"`
	Training int `json:"training"`
	HalfDay  int `json:"half_day"`
	Holiday  int `json:"holiday"`
}

// Total is the number of entries with a recognized status.
func (s DaySummary) Total() int {
	return s.Present + s.Absent + s.Training + s.HalfDay + s.Holiday
}

// String renders the compact form used in the summary row.
func (s DaySummary) String() string {
	return fmt.Sprintf("P:%d | A:%d | T:%d | H:%d | Ho:%d",
		s.Present, s.Absent, s.Training, s.HalfDay, s.Holiday)
}

// Label renders the long form used on print views.
func (s DaySummary) Label() string {
	return fmt.Sprintf("Present: %d | Absent: %d | Training: %d | Half Day: %d | Holiday: %d",
		s.Present, s.Absent, s.Training, s.HalfDay, s.Holiday)
}

// Day groups one date's rows with its totals.
type Day struct {
	Date    string     `json:"date"`
	Rows    []Row      `json:"rows"`
	Summary DaySummary `json:"summary"`
}

// SummaryRow builds the trailing totals row for the day.
func (d Day) SummaryRow() Row {
	return Row{
		Date:     d.Date,
		Employee: SummaryEmployee,
		Status:   d.Summary.String(),
		Reason:   Placeholder,
	}
}

type Report struct {
	Mode   Mode   `json:"mode"`
	Anchor string `json:"anchor"`
	Days   []Day  `json:"days"`
}

// Rows flattens the report: each day's rows followed by its summary row.
func (r Report) Rows() []Row {
	var rows []Row
	for _, d := range r.Days {
		rows = append(rows, d.Rows...)
		rows = append(rows, d.SummaryRow())
	}
	return rows
}

// FileName returns the artifact base name for the report window, without extension.
func (r Report) FileName() string {
	switch r.Mode {
	case ModeMonthly:
		return "Attendance_" + prefix(r.Anchor, 7)
	case ModeYearly:
		return "Attendance_" + prefix(r.Anchor, 4)
	default:
		return "Attendance_" + r.Anchor
	}
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
