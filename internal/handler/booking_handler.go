package handler

import (
	"net/http"
	"strconv"
	"time"

	"hospital-booking-backend/internal/service"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

type CreateBookingRequest struct {
	HospitalID   uint      `json:"hospital_id" binding:"required"`
	DepartmentID uint      `json:"department_id" binding:"required"`
	DoctorID     uint      `json:"doctor_id" binding:"required"`
	PreferredAt  time.Time `json:"preferred_at" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed rejected"`
}

// CreateBooking creates a pending booking for the calling patient
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	booking, err := h.bookingService.CreateBooking(accountID.(uint), service.CreateBookingInput{
		HospitalID:   req.HospitalID,
		DepartmentID: req.DepartmentID,
		DoctorID:     req.DoctorID,
		PreferredAt:  req.PreferredAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, booking)
}

// ListOwnBookings retrieves the calling patient's bookings
func (h *BookingHandler) ListOwnBookings(c *gin.Context) {
	accountID, _ := c.Get("accountID")

	bookings, err := h.bookingService.ListPatientBookings(accountID.(uint))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// ListHospitalBookings retrieves the calling hospital's bookings
func (h *BookingHandler) ListHospitalBookings(c *gin.Context) {
	accountID, _ := c.Get("accountID")

	bookings, err := h.bookingService.ListHospitalBookings(accountID.(uint))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// UpdateBookingStatus lets the calling hospital accept or reject a
// pending booking
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	booking, err := h.bookingService.UpdateBookingStatus(uint(id), accountID.(uint), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, booking)
}

// CancelBooking lets the calling patient cancel a pending booking
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	accountID, _ := c.Get("accountID")

	if err := h.bookingService.CancelBooking(uint(id), accountID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Booking cancelled successfully")
}
