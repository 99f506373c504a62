package validator

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used on the wire and in the Ledger.
const DateLayout = "2006-01-02"

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// IsFutureDate reports whether the calendar date dateStr lies after the
// calendar day of now. Both sides are compared as YYYY-MM-DD strings so the
// caller's local day is what counts.
func IsFutureDate(dateStr string, now time.Time) bool {
	return dateStr > now.Format(DateLayout)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

type Date time.Time

// ParseDate parses a date string in "YYYY-MM-DD" format and returns a Date type.
func ParseDate(dateStr string) (Date, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

// Before reports whether the date d is before u.
func (d Date) Before(u Date) bool {
	return time.Time(d).Before(time.Time(u))
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}
