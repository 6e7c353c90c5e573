package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shiftmaster/internal/auth"
	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

// UpsertAssignmentInput is the write payload for one (employee, date) cell.
// Zero ids count as absent; a zero time slot clears the slot.
type UpsertAssignmentInput struct {
	EmployeeID     uint   `json:"employee_id"`
	AssignmentDate string `json:"assignment_date"`
	RoleID         uint   `json:"role_id"`
	TimeSlotID     *uint  `json:"time_slot_id"`
}

// AssignmentView is an assignment with its related names resolved.
type AssignmentView struct {
	ID             uint       `json:"id"`
	EmployeeID     uint       `json:"employee_id"`
	EmployeeName   string     `json:"employee_name"`
	AssignmentDate model.Date `json:"assignment_date"`
	RoleID         uint       `json:"role_id"`
	RoleName       string     `json:"role_name"`
	RoleColor      string     `json:"role_color"`
	TimeSlotID     *uint      `json:"time_slot_id"`
	TimeSlotLabel  string     `json:"time_slot_label,omitempty"`
	TimeRange      string     `json:"time_range,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewAssignmentView flattens an assignment and its preloaded relations.
func NewAssignmentView(a *model.Assignment) AssignmentView {
	v := AssignmentView{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		AssignmentDate: a.AssignmentDate,
		RoleID:         a.RoleID,
		TimeSlotID:     a.TimeSlotID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.Employee != nil {
		v.EmployeeName = a.Employee.Name
	}
	if a.Role != nil {
		v.RoleName = a.Role.Name
		v.RoleColor = a.Role.Color
	}
	if a.TimeSlot != nil {
		v.TimeSlotLabel = a.TimeSlot.Label
		v.TimeRange = a.TimeSlot.TimeRange
	}
	return v
}

// AssignmentService implements the one-assignment-per-employee-per-day rule.
type AssignmentService interface {
	Upsert(ctx context.Context, actor auth.Identity, in UpsertAssignmentInput) (*AssignmentView, error)
	Delete(ctx context.Context, actor auth.Identity, employeeID uint, date string) error
	List(ctx context.Context, from, to string) ([]AssignmentView, error)
}

type assignmentService struct {
	repo  repository.AssignmentRepository
	audit AuditService
	now   func() time.Time
}

// NewAssignmentService creates a new assignment service.
func NewAssignmentService(repo repository.AssignmentRepository, audit AuditService) AssignmentService {
	return &assignmentService{
		repo:  repo,
		audit: audit,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Upsert updates the existing row for (employee, date) in place or inserts a new one.
// There is no lock: a concurrent insert for the same key fails on the unique index and
// surfaces as ErrAssignmentConflict.
func (s *assignmentService) Upsert(ctx context.Context, actor auth.Identity, in UpsertAssignmentInput) (*AssignmentView, error) {
	if in.EmployeeID == 0 {
		return nil, missingField("employee_id")
	}
	if in.AssignmentDate == "" {
		return nil, missingField("assignment_date")
	}
	if in.RoleID == 0 {
		return nil, missingField("role_id")
	}
	date, err := model.ParseDate(in.AssignmentDate)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}
	timeSlotID := in.TimeSlotID
	if timeSlotID != nil && *timeSlotID == 0 {
		timeSlotID = nil
	}

	action := model.ActionShiftAssigned
	existing, err := s.repo.FindByKey(ctx, in.EmployeeID, date)
	switch {
	case err == nil:
		action = model.ActionShiftUpdated
		if err := s.repo.UpdateRoleAndSlot(ctx, existing.ID, in.RoleID, timeSlotID, s.now()); err != nil {
			return nil, s.writeErr("update assignment", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		assignment := &model.Assignment{
			EmployeeID:     in.EmployeeID,
			AssignmentDate: date,
			RoleID:         in.RoleID,
			TimeSlotID:     timeSlotID,
		}
		if err := s.repo.Create(ctx, assignment); err != nil {
			return nil, s.writeErr("create assignment", err)
		}
	default:
		return nil, storeErr("find assignment", err)
	}

	saved, err := s.repo.FindByKeyWithRelations(ctx, in.EmployeeID, date)
	if err != nil {
		return nil, storeErr("reload assignment", err)
	}
	view := NewAssignmentView(saved)

	if action == model.ActionShiftUpdated {
		s.audit.Record(ctx, actor.Username, action,
			fmt.Sprintf("Updated shift for employee %s on %s to role %s", view.EmployeeName, date, view.RoleName))
	} else {
		s.audit.Record(ctx, actor.Username, action,
			fmt.Sprintf("Assigned shift for employee %s on %s with role %s", view.EmployeeName, date, view.RoleName))
	}

	return &view, nil
}

// writeErr maps store failures on the write path. A row that vanished between the
// lookup and the update is reported as a conflict as well, so the client retries.
func (s *assignmentService) writeErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateKey), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrAssignmentConflict
	case errors.Is(err, repository.ErrForeignKey):
		return apperrors.ErrReferenceNotFound
	default:
		return storeErr(op, err)
	}
}

// Delete removes the assignment for (employee, date). Nothing is audited when no row exists.
func (s *assignmentService) Delete(ctx context.Context, actor auth.Identity, employeeID uint, dateStr string) error {
	if employeeID == 0 {
		return missingField("employee_id")
	}
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return apperrors.ErrInvalidDate
	}

	existing, err := s.repo.FindByKeyWithRelations(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return storeErr("find assignment", err)
	}
	prior := NewAssignmentView(existing)

	if err := s.repo.DeleteByKey(ctx, employeeID, date); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return storeErr("delete assignment", err)
	}

	s.audit.Record(ctx, actor.Username, model.ActionShiftDeleted,
		fmt.Sprintf("Removed shift for %s on %s (Role: %s)", prior.EmployeeName, date, prior.RoleName))
	return nil
}

// List returns assignments, optionally bounded by inclusive from/to dates.
func (s *assignmentService) List(ctx context.Context, from, to string) ([]AssignmentView, error) {
	var filter repository.AssignmentFilter
	if from != "" {
		d, err := model.ParseDate(from)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		filter.From = &d
	}
	if to != "" {
		d, err := model.ParseDate(to)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		filter.To = &d
	}

	assignments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeErr("list assignments", err)
	}

	views := make([]AssignmentView, 0, len(assignments))
	for i := range assignments {
		views = append(views, NewAssignmentView(&assignments[i]))
	}
	return views, nil
}
