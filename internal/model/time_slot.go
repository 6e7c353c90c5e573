package model

import "time"

// TimeSlot is a named time range such as "Morning" / "08:00-12:00".
// TimeRange is free text used only for display.
type TimeSlot struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Label     string    `json:"label" gorm:"size:100;not null;uniqueIndex"`
	TimeRange string    `json:"time_range" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
}
