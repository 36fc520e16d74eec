package repository

import (
	"encoding/json"

	"hospital-booking-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry. Details is marshaled to
// the JSON column; a marshal failure falls back to an empty object so
// the action itself is never lost.
func (r *AuditRepository) CreateAuditLog(actorID *uint, actorRole, action string, details interface{}) error {
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}

	entry := &models.AuditLog{
		ActorID:   actorID,
		ActorRole: actorRole,
		Action:    action,
		Details:   datatypes.JSON(payload),
	}
	return r.db.Create(entry).Error
}
