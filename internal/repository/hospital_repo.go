package repository

import (
	"errors"

	"hospital-booking-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetApprovedHospitals retrieves all active, admin-approved hospitals
func (r *HospitalRepository) GetApprovedHospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Where("is_active = ? AND is_approved = ?", true, true).
		Order("name ASC").
		Find(&hospitals).Error
	return hospitals, err
}

// GetAllHospitals retrieves all active hospitals, approved or not
func (r *HospitalRepository) GetAllHospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// GetHospitalByID retrieves a hospital by ID
func (r *HospitalRepository) GetHospitalByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("hospital not found")
		}
		return nil, err
	}
	return &hospital, nil
}

// FindHospitalByEmail retrieves a hospital by its login email
func (r *HospitalRepository) FindHospitalByEmail(email string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Where("email = ?", email).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("hospital not found")
		}
		return nil, err
	}
	return &hospital, nil
}

// CreateHospital creates a new hospital account
func (r *HospitalRepository) CreateHospital(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// UpdateHospital updates an existing hospital
func (r *HospitalRepository) UpdateHospital(hospital *models.Hospital) error {
	return r.db.Save(hospital).Error
}

// ApproveHospital flips the admin approval flag
func (r *HospitalRepository) ApproveHospital(id uint) error {
	return r.db.Model(&models.Hospital{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}

// SoftDeleteHospital soft deletes a hospital by setting is_active to false
func (r *HospitalRepository) SoftDeleteHospital(id uint) error {
	return r.db.Model(&models.Hospital{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
