package staff

import (
	"errors"
	"strings"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name string `json:"name"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if _, err := ValidateName(r.Name); err != nil {
		errs = append(errs, nameError("name", err))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RenameStaffRequest struct {
	OldName string `json:"-"`
	NewName string `json:"newName"`
}

func (r *RenameStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	r.NewName = strings.TrimSpace(r.NewName)
	if validator.IsEmpty(r.OldName) {
		errs = append(errs, validator.ValidationError{
			Field:   "oldName",
			Message: "oldName is required",
		})
	}
	if _, err := ValidateName(r.NewName); err != nil {
		errs = append(errs, nameError("newName", err))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func nameError(field string, err error) validator.ValidationError {
	msg := field + " must not exceed 100 characters"
	if errors.Is(err, ErrEmptyName) {
		msg = field + " is required"
	}
	return validator.ValidationError{Field: field, Message: msg}
}

type StaffResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

func NewStaffResponse(s Staff) StaffResponse {
	return StaffResponse{ID: s.ID, Name: s.Name}
}
