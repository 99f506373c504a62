package report

import (
	"strings"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatText Format = "text"
)

// ReportRequest selects a report window around an anchor date.
type ReportRequest struct {
	Mode string `json:"mode"`
	Date string `json:"date"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseMode(r.Mode); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be daily, monthly or yearly",
		})
	}
	errs = append(errs, validateDate(r.Date)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportRequest struct {
	ReportRequest
	Format string `json:"format"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.ReportRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if mode, err := ParseMode(r.Mode); err == nil && mode == ModeDaily {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "export supports monthly or yearly mode",
		})
	}
	r.Format = strings.ToLower(r.Format)
	if r.Format == "" {
		r.Format = string(FormatXLSX)
	}
	if !validator.IsInSlice(r.Format, []string{string(FormatXLSX), string(FormatCSV)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be xlsx or csv",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PrintRequest struct {
	Date   string `json:"date"`
	Format string `json:"format"`
}

func (r *PrintRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateDate(r.Date)...)
	r.Format = strings.ToLower(r.Format)
	if r.Format == "" {
		r.Format = string(FormatHTML)
	}
	if !validator.IsInSlice(r.Format, []string{string(FormatHTML), string(FormatPDF)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be html or pdf",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Artifact is a rendered export or print document.
type Artifact struct {
	FileName    string
	ContentType string
	Body        []byte
}

func validateDate(date string) validator.ValidationErrors {
	if validator.IsEmpty(date) {
		return validator.ValidationErrors{{Field: "date", Message: "date is required"}}
	}
	if _, ok := validator.IsValidDate(date); !ok {
		return validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	return nil
}
