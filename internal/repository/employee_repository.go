package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftmaster/internal/model"
)

// EmployeeRepository defines employee persistence operations.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	FindByName(ctx context.Context, name string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee.
func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return translateError(r.db.WithContext(ctx).Create(employee).Error)
}

// Update updates an existing employee.
func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return translateError(r.db.WithContext(ctx).Save(employee).Error)
}

// FindByID finds an employee by ID.
func (r *employeeRepository) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByName finds the first employee with the exact name.
func (r *employeeRepository) FindByName(ctx context.Context, name string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// List lists all employees ordered by name.
func (r *employeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Delete removes an employee; the store cascades to its assignments.
func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	return deleteResult(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Employee{}))
}
