// Package ledger holds the in-memory attendance dataset (date-major, then
// employee) together with the summary and report logic that reads it.
//
// A Ledger is not safe for concurrent use.
package ledger

import (
	"sort"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
)

// Record is the value stored for one (date, employee) pair.
type Record struct {
	Status attendance.Status
	Reason string
}

// Patch describes a partial update; nil fields keep their prior value.
type Patch struct {
	Status *attendance.Status
	Reason *string
}

type Ledger struct {
	days map[string]map[string]Record
}

func New() *Ledger {
	return &Ledger{days: make(map[string]map[string]Record)}
}

// FromEntries builds a Ledger from Record Store rows. A later row for the
// same (date, employee) replaces an earlier one.
func FromEntries(entries []attendance.Entry) *Ledger {
	l := New()
	for _, e := range entries {
		status, reason := e.Status, e.Reason
		l.Set(e.Date, e.Employee, Patch{Status: &status, Reason: &reason})
	}
	return l
}

func (l *Ledger) Get(date, employee string) (Record, bool) {
	rec, ok := l.days[date][employee]
	return rec, ok
}

// Set inserts or overwrites the single entry for (date, employee) and returns
// the stored record. A Present status always carries an empty reason.
func (l *Ledger) Set(date, employee string, p Patch) Record {
	day, ok := l.days[date]
	if !ok {
		day = make(map[string]Record)
		l.days[date] = day
	}

	rec := day[employee]
	if p.Status != nil {
		rec.Status = *p.Status
	}
	if p.Reason != nil {
		rec.Reason = *p.Reason
	}
	if rec.Status == attendance.StatusPresent {
		rec.Reason = ""
	}

	day[employee] = rec
	return rec
}

// RemoveEmployee deletes every entry of name.
func (l *Ledger) RemoveEmployee(name string) {
	for date, day := range l.days {
		delete(day, name)
		if len(day) == 0 {
			delete(l.days, date)
		}
	}
}

// RenameEmployee moves every entry of oldName to newName. On a date where
// newName already has an entry, the moved entry wins.
func (l *Ledger) RenameEmployee(oldName, newName string) {
	if oldName == newName {
		return
	}
	for _, day := range l.days {
		rec, ok := day[oldName]
		if !ok {
			continue
		}
		day[newName] = rec
		delete(day, oldName)
	}
}

// Day returns a copy of one date's employee map.
func (l *Ledger) Day(date string) map[string]Record {
	day := make(map[string]Record, len(l.days[date]))
	for name, rec := range l.days[date] {
		day[name] = rec
	}
	return day
}

// Dates returns every date holding at least one entry, ascending.
func (l *Ledger) Dates() []string {
	dates := make([]string, 0, len(l.days))
	for date, day := range l.days {
		if len(day) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}

// Len is the total number of entries.
func (l *Ledger) Len() int {
	n := 0
	for _, day := range l.days {
		n += len(day)
	}
	return n
}

// Employees returns the distinct employee names present on any date, sorted.
func (l *Ledger) Employees() []string {
	seen := make(map[string]struct{})
	for _, day := range l.days {
		for name := range day {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries flattens the Ledger ordered by date, then employee name.
func (l *Ledger) Entries() []attendance.Entry {
	var entries []attendance.Entry
	for _, date := range l.Dates() {
		day := l.days[date]
		names := make([]string, 0, len(day))
		for name := range day {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rec := day[name]
			entries = append(entries, attendance.Entry{
				Date:     date,
				Employee: name,
				Status:   rec.Status,
				Reason:   rec.Reason,
			})
		}
	}
	return entries
}
