package attendance

import "fmt"

// Status is the closed set of attendance states. The zero value is unset.
type Status string

const (
	StatusUnset    Status = ""
	StatusPresent  Status = "Present"
	StatusAbsent   Status = "Absent"
	StatusTraining Status = "Training"
	StatusHalfDay  Status = "Half Day"
	StatusHoliday  Status = "Holiday"
)

// Statuses lists the recognized statuses in display order.
var Statuses = []Status{StatusPresent, StatusAbsent, StatusTraining, StatusHalfDay, StatusHoliday}

// ParseStatus accepts one of the recognized statuses or the empty string.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if status == StatusUnset || status.IsRecognized() {
		return status, nil
	}
	return StatusUnset, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// IsRecognized reports whether s is one of the five real statuses.
func (s Status) IsRecognized() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusTraining, StatusHalfDay, StatusHoliday:
		return true
	}
	return false
}

// NeedsReason reports whether a reason should accompany the status.
func (s Status) NeedsReason() bool {
	return s.IsRecognized() && s != StatusPresent
}

func (s Status) String() string {
	return string(s)
}
