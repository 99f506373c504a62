package attendance

import "time"

// Entry is one (date, employee) attendance record as exchanged with the
// Record Store. Date is YYYY-MM-DD.
type Entry struct {
	Date     string
	Employee string
	Status   Status
	Reason   string
}

// Normalized clears the reason of a Present entry.
func (e Entry) Normalized() Entry {
	if e.Status == StatusPresent {
		e.Reason = ""
	}
	return e
}

// Attendance is the persisted form of an Entry.
type Attendance struct {
	ID        string
	Entry
	CreatedAt time.Time
	UpdatedAt time.Time
}
