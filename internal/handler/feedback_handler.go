package handler

import (
	"net/http"
	"strconv"

	"hospital-booking-backend/internal/service"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

type CreateFeedbackRequest struct {
	HospitalID uint   `json:"hospital_id" binding:"required"`
	Message    string `json:"message" binding:"required,min=2,max=2000"`
}

// CreateFeedback appends feedback from the calling patient
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	feedback, err := h.feedbackService.CreateFeedback(accountID.(uint), req.HospitalID, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, feedback)
}

// ListFeedback retrieves all feedback for a hospital
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("hospital_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	feedbacks, err := h.feedbackService.ListFeedback(uint(hospitalID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch feedback")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"feedback": feedbacks,
		"count":    len(feedbacks),
	})
}
