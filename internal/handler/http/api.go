package http

import (
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/sse"
	attendanceService "github.com/cmlabs-hris/attendance-tracker/internal/service/attendance"
	reportService "github.com/cmlabs-hris/attendance-tracker/internal/service/report"
	staffService "github.com/cmlabs-hris/attendance-tracker/internal/service/staff"
	"github.com/go-chi/chi/v5"
)

// NewAPI wires services and handlers on top of the given repositories.
func NewAPI(
	logger *slog.Logger,
	allowedOrigins []string,
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
	hub *sse.Hub,
) *chi.Mux {
	staffSvc := staffService.NewStaffService(staffRepo, hub)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo, hub)
	reportSvc := reportService.NewReportService(staffRepo, attendanceRepo)

	return NewRouter(
		logger,
		allowedOrigins,
		NewStaffHandler(staffSvc),
		NewAttendanceHandler(attendanceSvc),
		NewReportHandler(reportSvc),
		NewEventHandler(hub),
	)
}
