package models

import "time"

// Hospital represents a hospital account in the system.
// Hospitals authenticate with email/password and must be approved by an
// admin before they become visible to patients.
type Hospital struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null" json:"hospital_name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Profile fields, filled in after registration
	PhoneNumber        string     `gorm:"size:20" json:"phone_number,omitempty"`
	Address            string     `gorm:"type:text" json:"address,omitempty"`
	City               string     `gorm:"size:100" json:"city,omitempty"`
	District           string     `gorm:"size:100" json:"district,omitempty"`
	PinCode            string     `gorm:"size:10" json:"pin_code,omitempty"`
	LicenseNumber      string     `gorm:"size:100" json:"license_number,omitempty"`
	LicenseExpiryDate  *time.Time `json:"license_expiry_date,omitempty"`
	Accreditations     string     `gorm:"type:text" json:"accreditations,omitempty"`
	AdminContactPerson string     `gorm:"size:100" json:"admin_contact_person,omitempty"`
	AdminContactPhone  string     `gorm:"size:20" json:"admin_contact_phone,omitempty"`
	AppointmentLimit   int        `gorm:"default:50" json:"appointment_limit"`

	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}
