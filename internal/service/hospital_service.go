package service

import (
	"errors"
	"fmt"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/repository"
	"hospital-booking-backend/pkg/utils"
)

type HospitalService struct {
	hospitalRepo *repository.HospitalRepository
	auditRepo    *repository.AuditRepository
}

func NewHospitalService(
	hospitalRepo *repository.HospitalRepository,
	auditRepo *repository.AuditRepository,
) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
	}
}

// ListHospitals retrieves hospitals based on caller role. Admins see all
// active hospitals, everyone else sees only approved ones.
func (s *HospitalService) ListHospitals(role string) ([]models.Hospital, error) {
	if role == utils.RoleAdmin {
		return s.hospitalRepo.GetAllHospitals()
	}
	return s.hospitalRepo.GetApprovedHospitals()
}

// GetHospitalByID retrieves a hospital. Unapproved hospitals are visible
// only to admins and to the hospital itself.
func (s *HospitalService) GetHospitalByID(id uint, callerID uint, role string) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.GetHospitalByID(id)
	if err != nil {
		return nil, err
	}

	if !hospital.IsApproved && role != utils.RoleAdmin &&
		!(role == utils.RoleHospital && callerID == id) {
		return nil, errors.New("hospital not found")
	}

	return hospital, nil
}

// HospitalProfileUpdate carries the editable profile fields. Identity and
// approval fields are deliberately absent.
type HospitalProfileUpdate struct {
	Name               string `json:"hospital_name"`
	PhoneNumber        string `json:"phone_number"`
	Address            string `json:"address"`
	City               string `json:"city"`
	District           string `json:"district"`
	PinCode            string `json:"pin_code"`
	LicenseNumber      string `json:"license_number"`
	Accreditations     string `json:"accreditations"`
	AdminContactPerson string `json:"admin_contact_person"`
	AdminContactPhone  string `json:"admin_contact_phone"`
	AppointmentLimit   int    `json:"appointment_limit"`
}

// UpdateProfile updates a hospital's own profile fields
func (s *HospitalService) UpdateProfile(hospitalID uint, update *HospitalProfileUpdate) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.GetHospitalByID(hospitalID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		hospital.Name = update.Name
	}
	hospital.PhoneNumber = update.PhoneNumber
	hospital.Address = update.Address
	hospital.City = update.City
	hospital.District = update.District
	hospital.PinCode = update.PinCode
	hospital.LicenseNumber = update.LicenseNumber
	hospital.Accreditations = update.Accreditations
	hospital.AdminContactPerson = update.AdminContactPerson
	hospital.AdminContactPhone = update.AdminContactPhone
	if update.AppointmentLimit > 0 {
		hospital.AppointmentLimit = update.AppointmentLimit
	}

	if err := s.hospitalRepo.UpdateHospital(hospital); err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	actorID := &hospitalID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "hospital_profile_update",
		map[string]interface{}{"hospital_id": hospitalID})

	return hospital, nil
}

// ApproveHospital marks a hospital as approved (admin only)
func (s *HospitalService) ApproveHospital(id uint, adminID uint) error {
	hospital, err := s.hospitalRepo.GetHospitalByID(id)
	if err != nil {
		return err
	}

	if hospital.IsApproved {
		return errors.New("hospital is already approved")
	}

	if err := s.hospitalRepo.ApproveHospital(id); err != nil {
		return fmt.Errorf("failed to approve hospital: %w", err)
	}

	actorID := &adminID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleAdmin, "hospital_approve",
		map[string]interface{}{"hospital_id": id, "name": hospital.Name})

	return nil
}
