package model

import "time"

// Assignment binds one employee to a role (and optionally a time slot) on one date.
// (EmployeeID, AssignmentDate) is unique.
type Assignment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	EmployeeID     uint      `json:"employee_id" gorm:"not null;uniqueIndex:idx_assignments_employee_date,priority:1"`
	AssignmentDate Date      `json:"assignment_date" gorm:"not null;uniqueIndex:idx_assignments_employee_date,priority:2"`
	RoleID         uint      `json:"role_id" gorm:"not null;index"`
	TimeSlotID     *uint     `json:"time_slot_id" gorm:"index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Role     *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
	TimeSlot *TimeSlot `json:"time_slot,omitempty" gorm:"foreignKey:TimeSlotID;constraint:OnDelete:RESTRICT"`
}
