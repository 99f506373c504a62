package attendance

import "context"

// AttendanceRepository persists attendance rows keyed by (date, employee).
type AttendanceRepository interface {
	// Upsert inserts the entry or overwrites status and reason of the existing
	// row for the same (date, employee).
	Upsert(ctx context.Context, entry Entry) (Attendance, error)

	// List returns rows ordered by date, then insertion.
	List(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error)
}
