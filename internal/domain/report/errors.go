package report

import "errors"

var (
	ErrNoData        = errors.New("no attendance data found for the selected period")
	ErrInvalidMode   = errors.New("report mode must be daily, monthly or yearly")
	ErrInvalidFormat = errors.New("unsupported report format")
)
