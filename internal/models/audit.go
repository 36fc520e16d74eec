package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records security-relevant actions (registrations, logins,
// approvals, booking status changes). ActorID is nil for anonymous or
// system actions.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ActorID   *uint          `gorm:"index" json:"actor_id"`
	ActorRole string         `gorm:"size:20" json:"actor_role"`
	Action    string         `gorm:"size:100;not null" json:"action"`
	Details   datatypes.JSON `json:"details,omitempty"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
