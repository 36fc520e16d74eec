package repository

import (
	"errors"
	"time"

	"hospital-booking-backend/internal/models"

	"gorm.io/gorm"
)

type PremiumRepository struct {
	db *gorm.DB
}

func NewPremiumRepo(db *gorm.DB) *PremiumRepository {
	return &PremiumRepository{db: db}
}

// GetByHospitalID retrieves a hospital's subscription record
func (r *PremiumRepository) GetByHospitalID(hospitalID uint) (*models.PremiumHospital, error) {
	var premium models.PremiumHospital
	err := r.db.Where("hospital_id = ?", hospitalID).First(&premium).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("subscription not found")
		}
		return nil, err
	}
	return &premium, nil
}

// CreatePremium creates a pending subscription record
func (r *PremiumRepository) CreatePremium(premium *models.PremiumHospital) error {
	return r.db.Create(premium).Error
}

// UpdatePremium updates an existing subscription record
func (r *PremiumRepository) UpdatePremium(premium *models.PremiumHospital) error {
	return r.db.Save(premium).Error
}

// ExpireOverdue marks active subscriptions whose expiry has passed as
// expired. Returns the number of rows affected.
func (r *PremiumRepository) ExpireOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&models.PremiumHospital{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.PremiumStatusActive, now).
		Update("status", models.PremiumStatusExpired)
	return result.RowsAffected, result.Error
}
