package models

import "time"

// Booking status values. Confirmed, rejected and cancelled are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
)

// Booking references exactly one hospital, department, doctor and patient.
// Created by a patient action; mutated by hospital-side accept/reject;
// immutable once it reaches a terminal status.
type Booking struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	HospitalID   uint      `gorm:"not null;index" json:"hospital_id"`
	DepartmentID uint      `gorm:"not null;index" json:"department_id"`
	DoctorID     uint      `gorm:"not null;index" json:"doctor_id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	PreferredAt  time.Time `gorm:"not null" json:"preferred_at"`
	Status       string    `gorm:"type:enum('pending','confirmed','rejected','cancelled');default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Hospital   Hospital   `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Doctor     Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient    User       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for Booking model
func (Booking) TableName() string {
	return "bookings"
}

// IsTerminal reports whether the booking can no longer change status.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusConfirmed ||
		b.Status == BookingStatusRejected ||
		b.Status == BookingStatusCancelled
}

// BookingWithDetails flattens referenced names for list endpoints,
// mirroring what hospital dashboards and patient history pages render.
type BookingWithDetails struct {
	Booking
	HospitalName   string `json:"hospital"`
	DepartmentName string `json:"department"`
	DoctorName     string `json:"doctor"`
	PatientName    string `json:"patient_name"`
	PatientEmail   string `json:"patient_email"`
}
