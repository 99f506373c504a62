package staff

import "time"

// Staff is one roster member. Attendance rows refer to staff by Name.
type Staff struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
