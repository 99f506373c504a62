package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List handles GET /attendance
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Save handles POST /attendance/save
func (h *attendanceHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	saved, err := h.attendanceService.SaveAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", saved)
}
