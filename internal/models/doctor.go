package models

import (
	"time"

	"gorm.io/datatypes"
)

// Doctor belongs to exactly one department (and transitively one hospital).
// AvailableDays holds a JSON array of weekday names.
type Doctor struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	DepartmentID  uint           `gorm:"not null;index" json:"department_id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Experience    int            `gorm:"default:0" json:"experience"`
	AvailableDays datatypes.JSON `json:"available_days,omitempty"`
	ImageURL      string         `gorm:"size:255" json:"image,omitempty"`
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// DoctorWithDetails flattens the department/hospital chain for listing
// endpoints so clients don't need to follow nested objects.
type DoctorWithDetails struct {
	Doctor
	DepartmentName string `json:"department"`
	HospitalID     uint   `json:"hospital_id"`
	HospitalName   string `json:"hospital"`
	District       string `json:"district,omitempty"`
}
