package model

import "time"

// UserRole is the authorization role carried in issued tokens.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
)

// Valid reports whether r is an assignable user role.
func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleEditor
}

// User represents a database-backed login.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'editor'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
