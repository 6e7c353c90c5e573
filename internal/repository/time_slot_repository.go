package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftmaster/internal/model"
)

// TimeSlotRepository defines time slot persistence operations.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *model.TimeSlot) error
	Update(ctx context.Context, slot *model.TimeSlot) error
	FindByID(ctx context.Context, id uint) (*model.TimeSlot, error)
	FindByLabel(ctx context.Context, label string) (*model.TimeSlot, error)
	List(ctx context.Context) ([]model.TimeSlot, error)
	Delete(ctx context.Context, id uint) error
}

type timeSlotRepository struct {
	db *gorm.DB
}

// NewTimeSlotRepository creates a new time slot repository.
func NewTimeSlotRepository(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepository{db: db}
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *model.TimeSlot) error {
	return translateError(r.db.WithContext(ctx).Create(slot).Error)
}

func (r *timeSlotRepository) Update(ctx context.Context, slot *model.TimeSlot) error {
	return translateError(r.db.WithContext(ctx).Save(slot).Error)
}

func (r *timeSlotRepository) FindByID(ctx context.Context, id uint) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindByLabel(ctx context.Context, label string) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := r.db.WithContext(ctx).Where("label = ?", label).First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) List(ctx context.Context) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	if err := r.db.WithContext(ctx).Order("label ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// Delete removes a time slot. A slot still referenced by assignments yields ErrForeignKey.
func (r *timeSlotRepository) Delete(ctx context.Context, id uint) error {
	return deleteResult(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TimeSlot{}))
}
