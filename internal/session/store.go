package session

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
)

// RecordStore is the durable side of a session.
type RecordStore interface {
	ListStaff(ctx context.Context) ([]string, error)
	AddStaff(ctx context.Context, name string) error
	RenameStaff(ctx context.Context, oldName, newName string) error
	RemoveStaff(ctx context.Context, name string) error
	ListAttendance(ctx context.Context) ([]attendance.Entry, error)
	// SaveAttendance upserts the entry for its (date, employee) pair.
	SaveAttendance(ctx context.Context, entry attendance.Entry) error
}

// PersistenceError reports a Record Store failure. When it follows a local
// mutation, that mutation has already been applied and is kept.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
