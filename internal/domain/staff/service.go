package staff

import "context"

type StaffService interface {
	ListStaff(ctx context.Context) ([]StaffResponse, error)
	AddStaff(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	RenameStaff(ctx context.Context, req RenameStaffRequest) error
	RemoveStaff(ctx context.Context, name string) error
}
