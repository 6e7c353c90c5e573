package model

import "time"

// Role is a shift role (e.g. "Cashier") with a display color for the grid.
type Role struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Color     string    `json:"color" gorm:"size:32;not null"`
	CreatedAt time.Time `json:"created_at"`
}
