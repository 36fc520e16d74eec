package models

import "time"

// Feedback is an append-only note a patient leaves for a hospital.
type Feedback struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for Feedback model
func (Feedback) TableName() string {
	return "feedbacks"
}

// FeedbackWithDetails includes the patient's username for list responses.
type FeedbackWithDetails struct {
	Feedback
	PatientName string `json:"patient_name"`
}
