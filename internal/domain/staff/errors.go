package staff

import "errors"

var (
	ErrEmptyName     = errors.New("staff name is required")
	ErrNameTooLong   = errors.New("staff name must not exceed 100 characters")
	ErrDuplicateName = errors.New("staff with this name already exists")
	ErrNameConflict  = errors.New("another staff member already uses this name")
	ErrStaffNotFound = errors.New("staff not found")
)
