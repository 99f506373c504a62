package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrDuplicateName):
		Conflict(w, "Staff with this name already exists")
	case errors.Is(err, staff.ErrNameConflict):
		Conflict(w, "Another staff member already uses this name")
	case errors.Is(err, staff.ErrEmptyName), errors.Is(err, staff.ErrNameTooLong):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, attendance.ErrFutureDate),
		errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrNoData):
		NotFound(w, "No attendance data for the selected period")
	case errors.Is(err, report.ErrInvalidMode), errors.Is(err, report.ErrInvalidFormat):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
