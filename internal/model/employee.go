package model

import "time"

// EmployeeType distinguishes full-time from part-time staff.
type EmployeeType string

const (
	EmployeeTypeFullTime EmployeeType = "FT"
	EmployeeTypePartTime EmployeeType = "PT"
)

// Valid reports whether t is a known employee type.
func (t EmployeeType) Valid() bool {
	return t == EmployeeTypeFullTime || t == EmployeeTypePartTime
}

// Employee is a person who can be scheduled on the weekly grid.
type Employee struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	Name           string       `json:"name" gorm:"size:255;not null;index"`
	Responsibility string       `json:"responsibility" gorm:"size:255"`
	Contact        string       `json:"contact" gorm:"size:255"`
	Type           EmployeeType `json:"type" gorm:"type:varchar(2);not null"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
