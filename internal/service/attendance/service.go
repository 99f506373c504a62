package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/sse"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	staff.StaffRepository
	hub *sse.Hub
	now func() time.Time
}

// SaveAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SaveAttendance(ctx context.Context, req attendance.SaveAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(s.now()); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Attendance is only kept for current roster members
	if _, err := s.StaffRepository.GetByName(ctx, req.Employee); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up staff: %w", err)
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, req.ToEntry())
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	slog.Debug("Attendance saved",
		"date", saved.Date,
		"employee", saved.Employee,
		"status", saved.Status,
	)

	response := attendance.NewAttendanceResponse(saved.Entry)
	s.hub.Publish(sse.Event{Event: sse.EventAttendanceChanged, Data: response})

	return response, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	rows, err := s.AttendanceRepository.List(ctx, attendance.ListAttendanceFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, attendance.NewAttendanceResponse(row.Entry))
	}
	return responses, nil
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	hub *sse.Hub,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		StaffRepository:      staffRepo,
		hub:                  hub,
		now:                  time.Now,
	}
}
