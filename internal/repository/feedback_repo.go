package repository

import (
	"hospital-booking-backend/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// CreateFeedback appends a feedback entry
func (r *FeedbackRepository) CreateFeedback(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// GetFeedbackByHospital retrieves all feedback for a hospital, newest first
func (r *FeedbackRepository) GetFeedbackByHospital(hospitalID uint) ([]models.FeedbackWithDetails, error) {
	var feedbacks []models.FeedbackWithDetails
	err := r.db.Model(&models.Feedback{}).
		Select("feedbacks.*, users.username AS patient_name").
		Joins("INNER JOIN users ON users.id = feedbacks.user_id").
		Where("feedbacks.hospital_id = ?", hospitalID).
		Order("feedbacks.created_at DESC").
		Scan(&feedbacks).Error
	return feedbacks, err
}
