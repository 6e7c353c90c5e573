package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shiftmaster/internal/auth"
	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

// CreateEmployeeInput is the payload for adding an employee.
type CreateEmployeeInput struct {
	Name           string             `json:"name"`
	Responsibility string             `json:"responsibility"`
	Contact        string             `json:"contact"`
	Type           model.EmployeeType `json:"type"`
}

// EmployeeService manages the employee roster.
type EmployeeService interface {
	List(ctx context.Context) ([]model.Employee, error)
	Create(ctx context.Context, actor auth.Identity, in CreateEmployeeInput) (*model.Employee, error)
	Delete(ctx context.Context, actor auth.Identity, id uint) error
}

type employeeService struct {
	repo  repository.EmployeeRepository
	audit AuditService
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo repository.EmployeeRepository, audit AuditService) EmployeeService {
	return &employeeService{repo: repo, audit: audit}
}

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr("list employees", err)
	}
	return employees, nil
}

func (s *employeeService) Create(ctx context.Context, actor auth.Identity, in CreateEmployeeInput) (*model.Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, missingField("name")
	}
	if in.Type == "" {
		return nil, missingField("type")
	}
	if !in.Type.Valid() {
		return nil, apperrors.ErrInvalidEmployeeType
	}

	employee := &model.Employee{
		Name:           name,
		Responsibility: in.Responsibility,
		Contact:        in.Contact,
		Type:           in.Type,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, storeErr("create employee", err)
	}

	s.audit.Record(ctx, actor.Username, model.ActionEmployeeAdded,
		fmt.Sprintf("Added employee: %s (%s)", employee.Name, employee.Type))
	return employee, nil
}

// Delete removes an employee together with all of their assignments.
func (s *employeeService) Delete(ctx context.Context, actor auth.Identity, id uint) error {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return storeErr("find employee", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return storeErr("delete employee", err)
	}

	s.audit.Record(ctx, actor.Username, model.ActionEmployeeRemoved,
		fmt.Sprintf("Removed employee: %s", employee.Name))
	return nil
}
