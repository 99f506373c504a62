package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/response"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Rename(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{
		staffService: staffService,
	}
}

// List handles GET /attendance/staffs
func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffService.ListStaff(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// Create handles POST /attendance/staffs
func (h *staffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.staffService.AddStaff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff added", created)
}

// Rename handles PUT /attendance/staffs/{name}
func (h *staffHandlerImpl) Rename(w http.ResponseWriter, r *http.Request) {
	oldName, err := pathParam(r, "name")
	if err != nil {
		response.BadRequest(w, "Invalid staff name", nil)
		return
	}

	var req staff.RenameStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.OldName = oldName

	if err := h.staffService.RenameStaff(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff renamed", staff.StaffResponse{Name: req.NewName})
}

// Delete handles DELETE /attendance/staffs/{name}
func (h *staffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		response.BadRequest(w, "Invalid staff name", nil)
		return
	}

	if err := h.staffService.RemoveStaff(r.Context(), name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff removed", nil)
}
