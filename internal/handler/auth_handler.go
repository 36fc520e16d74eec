package handler

import (
	"net/http"

	"hospital-booking-backend/internal/service"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type HospitalRegisterRequest struct {
	HospitalName string `json:"hospital_name" binding:"required,min=2,max=255"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
}

type PatientRegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterHospital handles hospital account registration
func (h *AuthHandler) RegisterHospital(c *gin.Context) {
	var req HospitalRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	response, err := h.authService.RegisterHospital(req.HospitalName, req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.CreatedResponse(c, gin.H{
		"access_token": response.AccessToken,
		"account":      response.Account,
	})
}

// LoginHospital handles hospital authentication
func (h *AuthHandler) LoginHospital(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.LoginHospital(req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"account":      response.Account,
	})
}

// RegisterPatient handles patient account registration
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req PatientRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	response, err := h.authService.RegisterPatient(req.Username, req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.CreatedResponse(c, gin.H{
		"access_token": response.AccessToken,
		"account":      response.Account,
	})
}

// LoginPatient handles patient/admin authentication
func (h *AuthHandler) LoginPatient(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.LoginPatient(req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"account":      response.Account,
	})
}

// Refresh generates a new access token from refresh token
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		// If no cookie, just clear it and return success
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(refreshToken); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	utils.MessageResponse(c, "Logged out successfully")
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	// Cookie lifetime tracks the refresh token's configured expiry so the
	// browser drops the cookie when the token stops being accepted.
	c.SetCookie(
		"refresh_token", // name
		token,           // value
		int(utils.GetRefreshTokenExpiry().Seconds()), // maxAge in seconds
		"/",   // path
		"",    // domain (empty means current domain)
		false, // secure (set to true in production with HTTPS)
		true,  // httpOnly
	)
}
