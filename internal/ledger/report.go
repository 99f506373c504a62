package ledger

import (
	"sort"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
)

// Generate selects the report window around anchor (YYYY-MM-DD) and lays the
// entries out per date in roster order. It returns report.ErrNoData when the
// Ledger is empty or nothing falls in the window.
func Generate(l *Ledger, roster []string, mode report.Mode, anchor string) (report.Report, error) {
	var match func(date string) bool
	switch mode {
	case report.ModeDaily:
		match = func(date string) bool { return date == anchor }
	case report.ModeMonthly:
		match = samePrefix(anchor, 7)
	case report.ModeYearly:
		match = samePrefix(anchor, 4)
	default:
		return report.Report{}, report.ErrInvalidMode
	}

	if l.Len() == 0 {
		return report.Report{}, report.ErrNoData
	}

	out := report.Report{Mode: mode, Anchor: anchor}
	for _, date := range l.Dates() {
		if !match(date) {
			continue
		}
		day := l.days[date]
		d := report.Day{Date: date, Summary: Summarize(day)}
		for _, name := range orderNames(day, roster) {
			rec := day[name]
			reason := rec.Reason
			if reason == "" {
				reason = report.Placeholder
			}
			d.Rows = append(d.Rows, report.Row{
				Date:     date,
				Employee: name,
				Status:   string(rec.Status),
				Reason:   reason,
			})
		}
		out.Days = append(out.Days, d)
	}

	if len(out.Days) == 0 {
		return report.Report{}, report.ErrNoData
	}
	return out, nil
}

// orderNames lists the day's employees in roster order; names missing from
// the roster follow in alphabetical order.
func orderNames(day map[string]Record, roster []string) []string {
	names := make([]string, 0, len(day))
	seen := make(map[string]struct{}, len(day))
	for _, name := range roster {
		if _, ok := day[name]; ok {
			if _, dup := seen[name]; !dup {
				names = append(names, name)
				seen[name] = struct{}{}
			}
		}
	}

	var rest []string
	for name := range day {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func samePrefix(anchor string, n int) func(string) bool {
	if len(anchor) < n {
		return func(string) bool { return false }
	}
	p := anchor[:n]
	return func(date string) bool {
		return len(date) >= n && date[:n] == p
	}
}
