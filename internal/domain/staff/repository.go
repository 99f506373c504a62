package staff

import "context"

// StaffRepository persists the roster. Rename and Delete also carry the
// change over to the staff member's attendance rows in the same transaction.
type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	List(ctx context.Context) ([]Staff, error)
	GetByName(ctx context.Context, name string) (Staff, error)
	Rename(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, name string) error
}
