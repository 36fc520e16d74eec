package handler

import (
	"net/http"
	"strconv"

	"hospital-booking-backend/internal/service"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// ListHospitals retrieves hospitals visible to the caller
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	role := c.GetString("role")

	hospitals, err := h.hospitalService.ListHospitals(role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("hospital_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	accountID, _ := c.Get("accountID")
	role := c.GetString("role")

	hospital, err := h.hospitalService.GetHospitalByID(uint(id), accountID.(uint), role)
	if err != nil {
		if err.Error() == "hospital not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospital")
		}
		return
	}

	utils.SuccessResponse(c, hospital)
}

// UpdateProfile updates the calling hospital's own profile
func (h *HospitalHandler) UpdateProfile(c *gin.Context) {
	var update service.HospitalProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	hospital, err := h.hospitalService.UpdateProfile(accountID.(uint), &update)
	if err != nil {
		if err.Error() == "hospital not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Profile updated successfully",
		"hospital": hospital,
	})
}

// ApproveHospital marks a hospital as approved (admin only)
func (h *HospitalHandler) ApproveHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("hospital_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	accountID, _ := c.Get("accountID")

	if err := h.hospitalService.ApproveHospital(uint(id), accountID.(uint)); err != nil {
		if err.Error() == "hospital not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Hospital approved successfully")
}
