package service

import (
	"errors"
	"fmt"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/repository"
)

type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
	hospitalRepo *repository.HospitalRepository
}

func NewFeedbackService(
	feedbackRepo *repository.FeedbackRepository,
	hospitalRepo *repository.HospitalRepository,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		hospitalRepo: hospitalRepo,
	}
}

// CreateFeedback appends a feedback entry from a patient for a hospital
func (s *FeedbackService) CreateFeedback(userID, hospitalID uint, message string) (*models.Feedback, error) {
	hospital, err := s.hospitalRepo.GetHospitalByID(hospitalID)
	if err != nil {
		return nil, err
	}
	if !hospital.IsApproved {
		return nil, errors.New("hospital not found")
	}

	feedback := &models.Feedback{
		UserID:     userID,
		HospitalID: hospitalID,
		Message:    message,
	}

	if err := s.feedbackRepo.CreateFeedback(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback, nil
}

// ListFeedback retrieves all feedback for a hospital
func (s *FeedbackService) ListFeedback(hospitalID uint) ([]models.FeedbackWithDetails, error) {
	return s.feedbackRepo.GetFeedbackByHospital(hospitalID)
}
