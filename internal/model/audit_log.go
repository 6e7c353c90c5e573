package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit action types.
const (
	ActionLogin           = "Login"
	ActionLoginFailed     = "Login Attempt Failed"
	ActionLogout          = "Logout"
	ActionShiftAssigned   = "Shift Assigned"
	ActionShiftUpdated    = "Shift Updated"
	ActionShiftDeleted    = "Shift Deleted"
	ActionEmployeeAdded   = "Employee Added"
	ActionEmployeeRemoved = "Employee Removed"
	ActionConfigChanged   = "Config Changed"
	ActionUserCreated     = "User Created"
	ActionUserDeleted     = "User Deleted"
	ActionAuditLogCleared = "Audit Log Cleared"
)

// AuditLog is an append-only record of one state-changing action.
type AuditLog struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Timestamp     time.Time `json:"timestamp" gorm:"autoCreateTime;not null;index"`
	ActorUsername string    `json:"actor_username" gorm:"size:255;not null;index"`
	ActionType    string    `json:"action_type" gorm:"size:64;not null;index"`
	Details       string    `json:"details" gorm:"type:text"`
}

// BeforeCreate sets UUID before creating the record.
func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
