package attendance

import "errors"

var (
	ErrNoDateSelected = errors.New("select a date first")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrFutureDate     = errors.New("cannot select a future date")
	ErrInvalidStatus  = errors.New("invalid attendance status")
)
