package repository

import (
	"errors"

	"hospital-booking-backend/internal/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking creates a new booking
func (r *BookingRepository) CreateBooking(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetBookingByID retrieves a booking by ID
func (r *BookingRepository) GetBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking not found")
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus transitions a booking out of pending. The status
// guard in the WHERE clause makes concurrent accept/reject/cancel racing
// on the same booking resolve to exactly one winner.
func (r *BookingRepository) UpdateBookingStatus(id uint, status string) error {
	result := r.db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.BookingStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("booking is no longer pending")
	}
	return nil
}

// GetBookingsByPatient retrieves a patient's bookings with referenced
// names flattened
func (r *BookingRepository) GetBookingsByPatient(patientID uint) ([]models.BookingWithDetails, error) {
	return r.listWithDetails("bookings.patient_id = ?", patientID)
}

// GetBookingsByHospital retrieves a hospital's bookings with referenced
// names flattened
func (r *BookingRepository) GetBookingsByHospital(hospitalID uint) ([]models.BookingWithDetails, error) {
	return r.listWithDetails("bookings.hospital_id = ?", hospitalID)
}

func (r *BookingRepository) listWithDetails(cond string, arg interface{}) ([]models.BookingWithDetails, error) {
	var bookings []models.BookingWithDetails
	err := r.db.Model(&models.Booking{}).
		Select(`bookings.*,
			hospitals.name AS hospital_name,
			departments.name AS department_name,
			doctors.name AS doctor_name,
			users.username AS patient_name,
			users.email AS patient_email`).
		Joins("INNER JOIN hospitals ON hospitals.id = bookings.hospital_id").
		Joins("INNER JOIN departments ON departments.id = bookings.department_id").
		Joins("INNER JOIN doctors ON doctors.id = bookings.doctor_id").
		Joins("INNER JOIN users ON users.id = bookings.patient_id").
		Where(cond, arg).
		Order("bookings.created_at DESC").
		Scan(&bookings).Error
	return bookings, err
}

// CountPendingByHospital counts a hospital's pending bookings, used to
// enforce the hospital's appointment limit
func (r *BookingRepository) CountPendingByHospital(hospitalID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("hospital_id = ? AND status = ?", hospitalID, models.BookingStatusPending).
		Count(&count).Error
	return count, err
}
