package ledger

import (
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
)

// Summarize counts the recognized statuses of one day. Unset and unknown
// statuses are skipped.
func Summarize(day map[string]Record) report.DaySummary {
	var s report.DaySummary
	for _, rec := range day {
		switch rec.Status {
		case attendance.StatusPresent:
			s.Present++
		case attendance.StatusAbsent:
			s.Absent++
		case attendance.StatusTraining:
			s.Training++
		case attendance.StatusHalfDay:
			s.HalfDay++
		case attendance.StatusHoliday:
			s.Holiday++
		}
	}
	return s
}

// SummarizeDate is Summarize over the Ledger's entries for date.
func (l *Ledger) SummarizeDate(date string) report.DaySummary {
	return Summarize(l.days[date])
}
