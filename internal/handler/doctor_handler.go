package handler

import (
	"net/http"
	"strconv"

	"hospital-booking-backend/internal/service"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type DoctorRequest struct {
	DepartmentID  uint     `json:"department_id" binding:"required"`
	Name          string   `json:"name" binding:"required,min=2,max=100"`
	Experience    int      `json:"experience" binding:"omitempty,min=0"`
	AvailableDays []string `json:"available_days" binding:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	ImageURL      string   `json:"image" binding:"omitempty,url"`
}

type DoctorUpdateRequest struct {
	Name          string   `json:"name" binding:"omitempty,min=2,max=100"`
	Experience    int      `json:"experience" binding:"omitempty,min=0"`
	AvailableDays []string `json:"available_days" binding:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	ImageURL      string   `json:"image" binding:"omitempty,url"`
}

// SearchDoctors retrieves doctors across approved hospitals. Supports an
// optional district filter via query parameter.
func (h *DoctorHandler) SearchDoctors(c *gin.Context) {
	doctors, err := h.doctorService.SearchDoctors(c.Query("district"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// ListDoctorsByDepartment retrieves all doctors in a department
func (h *DoctorHandler) ListDoctorsByDepartment(c *gin.Context) {
	departmentID, err := strconv.ParseUint(c.Param("department_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	doctors, err := h.doctorService.ListDoctorsByDepartment(uint(departmentID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// ListOwnDoctors retrieves all doctors of the calling hospital
func (h *DoctorHandler) ListOwnDoctors(c *gin.Context) {
	accountID, _ := c.Get("accountID")

	doctors, err := h.doctorService.ListDoctorsByHospital(accountID.(uint))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// CreateDoctor creates a doctor in a department owned by the calling
// hospital
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	doctor, err := h.doctorService.CreateDoctor(
		accountID.(uint), req.DepartmentID, req.Name, req.Experience, req.AvailableDays, req.ImageURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, doctor)
}

// UpdateDoctor updates a doctor owned by the calling hospital
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var req DoctorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	doctor, err := h.doctorService.UpdateDoctor(
		uint(id), accountID.(uint), req.Name, req.Experience, req.AvailableDays, req.ImageURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// DeleteDoctor removes a doctor owned by the calling hospital
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	accountID, _ := c.Get("accountID")

	if err := h.doctorService.DeleteDoctor(uint(id), accountID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Doctor deleted successfully")
}
