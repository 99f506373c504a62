package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// SaveAttendance upserts the single entry for (date, employee)
	SaveAttendance(ctx context.Context, req SaveAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance returns every stored entry
	ListAttendance(ctx context.Context) ([]AttendanceResponse, error)
}
