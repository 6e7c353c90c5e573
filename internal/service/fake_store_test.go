package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

// fakeAssignmentStore is an in-memory AssignmentRepository that enforces the same
// unique key and foreign keys as the real schema.
type fakeAssignmentStore struct {
	mu        sync.Mutex
	nextID    uint
	rows      map[string]*model.Assignment
	employees map[uint]model.Employee
	roles     map[uint]model.Role
	slots     map[uint]model.TimeSlot
}

func newFakeAssignmentStore() *fakeAssignmentStore {
	return &fakeAssignmentStore{
		rows: make(map[string]*model.Assignment),
		employees: map[uint]model.Employee{
			42: {ID: 42, Name: "Alice", Type: model.EmployeeTypeFullTime},
			43: {ID: 43, Name: "Bob", Type: model.EmployeeTypePartTime},
		},
		roles: map[uint]model.Role{
			7: {ID: 7, Name: "Cashier", Color: "#ff0000"},
			9: {ID: 9, Name: "Stock", Color: "#00ff00"},
		},
		slots: map[uint]model.TimeSlot{
			3: {ID: 3, Label: "Morning", TimeRange: "08:00-12:00"},
		},
	}
}

func assignmentKey(employeeID uint, date model.Date) string {
	return fmt.Sprintf("%d/%s", employeeID, date)
}

func (f *fakeAssignmentStore) checkRefs(employeeID, roleID uint, timeSlotID *uint) error {
	if _, ok := f.employees[employeeID]; !ok {
		return fmt.Errorf("%w: employee %d", repository.ErrForeignKey, employeeID)
	}
	if _, ok := f.roles[roleID]; !ok {
		return fmt.Errorf("%w: role %d", repository.ErrForeignKey, roleID)
	}
	if timeSlotID != nil {
		if _, ok := f.slots[*timeSlotID]; !ok {
			return fmt.Errorf("%w: time slot %d", repository.ErrForeignKey, *timeSlotID)
		}
	}
	return nil
}

func (f *fakeAssignmentStore) withRelations(a model.Assignment) *model.Assignment {
	if e, ok := f.employees[a.EmployeeID]; ok {
		a.Employee = &e
	}
	if r, ok := f.roles[a.RoleID]; ok {
		a.Role = &r
	}
	if a.TimeSlotID != nil {
		if s, ok := f.slots[*a.TimeSlotID]; ok {
			a.TimeSlot = &s
		}
	}
	return &a
}

func (f *fakeAssignmentStore) Create(_ context.Context, assignment *model.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkRefs(assignment.EmployeeID, assignment.RoleID, assignment.TimeSlotID); err != nil {
		return err
	}
	k := assignmentKey(assignment.EmployeeID, assignment.AssignmentDate)
	if _, exists := f.rows[k]; exists {
		return fmt.Errorf("%w: idx_assignments_employee_date", repository.ErrDuplicateKey)
	}
	f.nextID++
	now := time.Now().UTC()
	assignment.ID = f.nextID
	assignment.CreatedAt = now
	assignment.UpdatedAt = now
	row := *assignment
	f.rows[k] = &row
	return nil
}

func (f *fakeAssignmentStore) UpdateRoleAndSlot(_ context.Context, id uint, roleID uint, timeSlotID *uint, updatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, row := range f.rows {
		if row.ID != id {
			continue
		}
		if err := f.checkRefs(row.EmployeeID, roleID, timeSlotID); err != nil {
			return err
		}
		row.RoleID = roleID
		row.TimeSlotID = timeSlotID
		row.UpdatedAt = updatedAt
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAssignmentStore) FindByKey(_ context.Context, employeeID uint, date model.Date) (*model.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[assignmentKey(employeeID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeAssignmentStore) FindByKeyWithRelations(_ context.Context, employeeID uint, date model.Date) (*model.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[assignmentKey(employeeID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f.withRelations(*row), nil
}

func (f *fakeAssignmentStore) List(_ context.Context, filter repository.AssignmentFilter) ([]model.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Assignment
	for _, row := range f.rows {
		if filter.From != nil && row.AssignmentDate.Before(filter.From.Time) {
			continue
		}
		if filter.To != nil && row.AssignmentDate.After(filter.To.Time) {
			continue
		}
		out = append(out, *f.withRelations(*row))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AssignmentDate.Equal(out[j].AssignmentDate.Time) {
			return out[i].AssignmentDate.Before(out[j].AssignmentDate.Time)
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}

func (f *fakeAssignmentStore) DeleteByKey(_ context.Context, employeeID uint, date model.Date) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := assignmentKey(employeeID, date)
	if _, ok := f.rows[k]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, k)
	return nil
}

func (f *fakeAssignmentStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}
