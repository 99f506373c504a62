package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/sse"
)

type StaffServiceImpl struct {
	staff.StaffRepository
	hub *sse.Hub
}

// ListStaff implements staff.StaffService.
func (s *StaffServiceImpl) ListStaff(ctx context.Context) ([]staff.StaffResponse, error) {
	members, err := s.StaffRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, staff.NewStaffResponse(m))
	}
	return responses, nil
}

// AddStaff implements staff.StaffService.
func (s *StaffServiceImpl) AddStaff(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	created, err := s.StaffRepository.Create(ctx, staff.Staff{Name: req.Name})
	if err != nil {
		if errors.Is(err, staff.ErrDuplicateName) {
			return staff.StaffResponse{}, err
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to add staff: %w", err)
	}

	slog.Info("Staff added", "name", created.Name)
	s.hub.Publish(sse.Event{Event: sse.EventStaffAdded, Data: map[string]string{"name": created.Name}})

	return staff.NewStaffResponse(created), nil
}

// RenameStaff implements staff.StaffService.
func (s *StaffServiceImpl) RenameStaff(ctx context.Context, req staff.RenameStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.OldName == req.NewName {
		return nil
	}

	if err := s.StaffRepository.Rename(ctx, req.OldName, req.NewName); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, staff.ErrNameConflict) {
			return err
		}
		return fmt.Errorf("failed to rename staff: %w", err)
	}

	slog.Info("Staff renamed", "old_name", req.OldName, "new_name", req.NewName)
	s.hub.Publish(sse.Event{
		Event: sse.EventStaffRenamed,
		Data:  map[string]string{"oldName": req.OldName, "newName": req.NewName},
	})
	return nil
}

// RemoveStaff implements staff.StaffService.
func (s *StaffServiceImpl) RemoveStaff(ctx context.Context, name string) error {
	if name == "" {
		return staff.ErrEmptyName
	}

	if err := s.StaffRepository.Delete(ctx, name); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return err
		}
		return fmt.Errorf("failed to remove staff: %w", err)
	}

	slog.Info("Staff removed", "name", name)
	s.hub.Publish(sse.Event{Event: sse.EventStaffRemoved, Data: map[string]string{"name": name}})
	return nil
}

func NewStaffService(staffRepo staff.StaffRepository, hub *sse.Hub) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepo,
		hub:             hub,
	}
}
