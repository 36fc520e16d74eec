package models

import "time"

// Premium subscription status values.
const (
	PremiumStatusPending = "pending"
	PremiumStatusActive  = "active"
	PremiumStatusExpired = "expired"
)

// PremiumHospital is the one-to-one subscription record for a hospital.
// Created pending by a subscribe request and activated by payment
// confirmation.
type PremiumHospital struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	HospitalID uint       `gorm:"not null;uniqueIndex" json:"hospital_id"`
	Status     string     `gorm:"type:enum('pending','active','expired');default:'pending'" json:"subscription_status"`
	PremiumFee float64    `gorm:"default:0" json:"premium_fee"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for PremiumHospital model
func (PremiumHospital) TableName() string {
	return "premium_hospitals"
}
