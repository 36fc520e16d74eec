package handler

import (
	"net/http"
	"strconv"

	"hospital-booking-backend/internal/service"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

type DepartmentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	ImageURL string `json:"image" binding:"omitempty,url"`
}

// ListDepartments retrieves all departments of a hospital
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("hospital_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	departments, err := h.departmentService.ListDepartments(uint(hospitalID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch departments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"departments": departments,
		"count":       len(departments),
	})
}

// CreateDepartment creates a department owned by the calling hospital
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	department, err := h.departmentService.CreateDepartment(accountID.(uint), req.Name, req.ImageURL)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.CreatedResponse(c, department)
}

// UpdateDepartment updates a department owned by the calling hospital
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountID, _ := c.Get("accountID")

	department, err := h.departmentService.UpdateDepartment(uint(id), accountID.(uint), req.Name, req.ImageURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, department)
}

// DeleteDepartment removes a department owned by the calling hospital
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	accountID, _ := c.Get("accountID")

	if err := h.departmentService.DeleteDepartment(uint(id), accountID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Department deleted successfully")
}
