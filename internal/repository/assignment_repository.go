package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shiftmaster/internal/model"
)

// AssignmentFilter narrows List to an inclusive date range. Nil bounds are open.
type AssignmentFilter struct {
	From *model.Date
	To   *model.Date
}

// AssignmentRepository defines assignment persistence operations.
// The store guarantees at most one row per (employee_id, assignment_date).
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	UpdateRoleAndSlot(ctx context.Context, id uint, roleID uint, timeSlotID *uint, updatedAt time.Time) error
	FindByKey(ctx context.Context, employeeID uint, date model.Date) (*model.Assignment, error)
	FindByKeyWithRelations(ctx context.Context, employeeID uint, date model.Date) (*model.Assignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]model.Assignment, error)
	DeleteByKey(ctx context.Context, employeeID uint, date model.Date) error
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create inserts a new assignment. A concurrent insert for the same key yields ErrDuplicateKey.
func (r *assignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	return translateError(r.db.WithContext(ctx).Omit("Employee", "Role", "TimeSlot").Create(assignment).Error)
}

// UpdateRoleAndSlot rewrites the role and time slot of an existing row, keeping its id.
// A nil timeSlotID clears the slot.
func (r *assignmentRepository) UpdateRoleAndSlot(ctx context.Context, id uint, roleID uint, timeSlotID *uint, updatedAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.Assignment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role_id":      roleID,
			"time_slot_id": timeSlotID,
			"updated_at":   updatedAt,
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports 0 affected rows when the new values equal the old ones.
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Assignment{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByKey finds an assignment by its natural key.
func (r *assignmentRepository) FindByKey(ctx context.Context, employeeID uint, date model.Date) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND assignment_date = ?", employeeID, date).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindByKeyWithRelations finds an assignment and loads its employee, role and time slot.
func (r *assignmentRepository) FindByKeyWithRelations(ctx context.Context, employeeID uint, date model.Date) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Role").
		Preload("TimeSlot").
		Where("employee_id = ? AND assignment_date = ?", employeeID, date).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// List lists assignments with relations, ordered by date then employee.
func (r *assignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]model.Assignment, error) {
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Role").
		Preload("TimeSlot")
	if filter.From != nil {
		q = q.Where("assignment_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("assignment_date <= ?", *filter.To)
	}

	var assignments []model.Assignment
	if err := q.Order("assignment_date ASC").Order("employee_id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// DeleteByKey removes the assignment for the natural key.
func (r *assignmentRepository) DeleteByKey(ctx context.Context, employeeID uint, date model.Date) error {
	return deleteResult(r.db.WithContext(ctx).
		Where("employee_id = ? AND assignment_date = ?", employeeID, date).
		Delete(&model.Assignment{}))
}
