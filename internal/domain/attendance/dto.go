package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type SaveAttendanceRequest struct {
	Date     string `json:"date"`
	Employee string `json:"employee"`
	Status   string `json:"status"`
	Reason   string `json:"reason"`
}

// Validate checks the request against the given clock; dates after today are rejected.
func (r *SaveAttendanceRequest) Validate(now time.Time) error {
	var errs validator.ValidationErrors

	r.Employee = strings.TrimSpace(r.Employee)

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else if validator.IsFutureDate(r.Date, now) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must not be in the future",
		})
	}

	if validator.IsEmpty(r.Employee) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if _, err := ParseStatus(r.Status); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("status must be one of %s or empty", statusList()),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntry converts a validated request into a normalized Entry.
func (r SaveAttendanceRequest) ToEntry() Entry {
	return Entry{
		Date:     r.Date,
		Employee: r.Employee,
		Status:   Status(r.Status),
		Reason:   r.Reason,
	}.Normalized()
}

// ListAttendanceFilter restricts List to an inclusive date range; empty bounds are open.
type ListAttendanceFilter struct {
	StartDate string
	EndDate   string
}

type AttendanceResponse struct {
	Date     string `json:"date"`
	Employee string `json:"employee"`
	Status   string `json:"status"`
	Reason   string `json:"reason"`
}

func NewAttendanceResponse(e Entry) AttendanceResponse {
	return AttendanceResponse{
		Date:     e.Date,
		Employee: e.Employee,
		Status:   string(e.Status),
		Reason:   e.Reason,
	}
}

// ToEntry converts a wire record into an Entry. Unknown statuses are kept as-is;
// the summary ignores them.
func (r AttendanceResponse) ToEntry() Entry {
	return Entry{
		Date:     r.Date,
		Employee: r.Employee,
		Status:   Status(r.Status),
		Reason:   r.Reason,
	}
}

func statusList() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
