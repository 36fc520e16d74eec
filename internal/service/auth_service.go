package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/repository"
	"hospital-booking-backend/pkg/utils"
)

type AuthService struct {
	userRepo     *repository.UserRepository
	hospitalRepo *repository.HospitalRepository
	auditRepo    *repository.AuditRepository
}

func NewAuthService(
	userRepo *repository.UserRepository,
	hospitalRepo *repository.HospitalRepository,
	auditRepo *repository.AuditRepository,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
	}
}

// AuthResponse represents the response structure for login/registration
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Account      AccountResponse `json:"account"`
}

type AccountResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RegisterHospital creates a new hospital account. The account starts
// unapproved; an admin approves it before it shows up to patients.
func (s *AuthService) RegisterHospital(name, email, password string) (*AuthResponse, error) {
	// Check if email is already taken
	existing, err := s.hospitalRepo.FindHospitalByEmail(email)
	if err == nil && existing != nil {
		return nil, errors.New("email already registered")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hospital := &models.Hospital{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	if err := s.hospitalRepo.CreateHospital(hospital); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}

	response, err := s.issueTokens(hospital.ID, utils.RoleHospital, hospital.Name, hospital.Email)
	if err != nil {
		return nil, err
	}

	actorID := &hospital.ID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "hospital_registration",
		map[string]interface{}{"email": email, "name": name})

	return response, nil
}

// LoginHospital authenticates a hospital account and returns tokens
func (s *AuthService) LoginHospital(email, password string) (*AuthResponse, error) {
	hospital, err := s.hospitalRepo.FindHospitalByEmail(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !hospital.IsActive {
		return nil, errors.New("account is disabled")
	}

	if !utils.ComparePassword(hospital.PasswordHash, password) {
		return nil, errors.New("invalid credentials")
	}

	response, err := s.issueTokens(hospital.ID, utils.RoleHospital, hospital.Name, hospital.Email)
	if err != nil {
		return nil, err
	}

	actorID := &hospital.ID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "hospital_login",
		map[string]interface{}{"email": email})

	return response, nil
}

// RegisterPatient creates a new patient account
func (s *AuthService) RegisterPatient(username, email, password string) (*AuthResponse, error) {
	// Check if email or username is already taken
	if existing, err := s.userRepo.FindUserByEmail(email); err == nil && existing != nil {
		return nil, errors.New("email already registered")
	}
	if existing, err := s.userRepo.FindUserByUsername(username); err == nil && existing != nil {
		return nil, errors.New("username already taken")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         utils.RolePatient,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	response, err := s.issueTokens(user.ID, user.Role, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	actorID := &user.ID
	_ = s.auditRepo.CreateAuditLog(actorID, user.Role, "user_registration",
		map[string]interface{}{"username": username, "email": email})

	return response, nil
}

// LoginPatient authenticates a patient or admin account and returns tokens
func (s *AuthService) LoginPatient(email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errors.New("invalid credentials")
	}

	response, err := s.issueTokens(user.ID, user.Role, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	actorID := &user.ID
	_ = s.auditRepo.CreateAuditLog(actorID, user.Role, "user_login",
		map[string]interface{}{"email": email})

	return response, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.AccountID, token.AccountRole)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.userRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// issueTokens generates and stores the access/refresh token pair for an
// authenticated account.
func (s *AuthService) issueTokens(accountID uint, role, name, email string) (*AuthResponse, error) {
	accessToken, err := utils.GenerateAccessToken(accountID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	record := &models.RefreshToken{
		AccountID:   accountID,
		AccountRole: role,
		TokenHash:   utils.HashRefreshToken(refreshToken),
		ExpiresAt:   time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userRepo.CreateRefreshToken(record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account: AccountResponse{
			ID:    accountID,
			Name:  name,
			Email: email,
			Role:  role,
		},
	}, nil
}
