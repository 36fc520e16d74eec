package handler

import (
	"net/http"

	"hospital-booking-backend/internal/service"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PremiumHandler struct {
	premiumService *service.PremiumService
}

func NewPremiumHandler(premiumService *service.PremiumService) *PremiumHandler {
	return &PremiumHandler{
		premiumService: premiumService,
	}
}

type SubscribeRequest struct {
	Fee float64 `json:"fee" binding:"required,gt=0"`
}

type ConfirmPaymentRequest struct {
	PaymentRef string `json:"payment_ref" binding:"required"`
	Signature  string `json:"signature" binding:"required"`
}

// GetStatus retrieves the calling hospital's subscription status
func (h *PremiumHandler) GetStatus(c *gin.Context) {
	accountID, _ := c.Get("accountID")

	premium, err := h.premiumService.GetStatus(accountID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, premium)
}

// Subscribe creates a pending subscription for the calling hospital
func (h *PremiumHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	premium, err := h.premiumService.Subscribe(accountID.(uint), req.Fee)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, premium)
}

// ConfirmPayment activates the calling hospital's pending subscription
// after the payment gateway callback signature checks out
func (h *PremiumHandler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	premium, err := h.premiumService.ConfirmPayment(accountID.(uint), req.PaymentRef, req.Signature)
	if err != nil {
		if err.Error() == "invalid payment signature" {
			utils.ErrorResponse(c, http.StatusForbidden, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, premium)
}
