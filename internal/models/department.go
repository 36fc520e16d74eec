package models

import "time"

// Department belongs to exactly one hospital and owns zero or more doctors.
type Department struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	ImageURL   string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}
