package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/repository"
	"hospital-booking-backend/pkg/utils"

	"gorm.io/datatypes"
)

type DoctorService struct {
	doctorRepo     *repository.DoctorRepository
	departmentRepo *repository.DepartmentRepository
	auditRepo      *repository.AuditRepository
}

func NewDoctorService(
	doctorRepo *repository.DoctorRepository,
	departmentRepo *repository.DepartmentRepository,
	auditRepo *repository.AuditRepository,
) *DoctorService {
	return &DoctorService{
		doctorRepo:     doctorRepo,
		departmentRepo: departmentRepo,
		auditRepo:      auditRepo,
	}
}

// ListDoctorsByDepartment retrieves all doctors in a department
func (s *DoctorService) ListDoctorsByDepartment(departmentID uint) ([]models.Doctor, error) {
	return s.doctorRepo.GetDoctorsByDepartment(departmentID)
}

// ListDoctorsByHospital retrieves all doctors of a hospital
func (s *DoctorService) ListDoctorsByHospital(hospitalID uint) ([]models.DoctorWithDetails, error) {
	return s.doctorRepo.GetDoctorsByHospital(hospitalID)
}

// SearchDoctors retrieves doctors across approved hospitals, optionally
// filtered by district
func (s *DoctorService) SearchDoctors(district string) ([]models.DoctorWithDetails, error) {
	return s.doctorRepo.SearchDoctors(district)
}

// CreateDoctor creates a doctor in a department owned by the calling
// hospital
func (s *DoctorService) CreateDoctor(hospitalID, departmentID uint, name string, experience int, availableDays []string, imageURL string) (*models.Doctor, error) {
	department, err := s.departmentRepo.GetDepartmentByID(departmentID)
	if err != nil {
		return nil, err
	}

	if department.HospitalID != hospitalID {
		return nil, errors.New("access denied: department belongs to another hospital")
	}

	days, err := json.Marshal(availableDays)
	if err != nil {
		return nil, fmt.Errorf("failed to encode available days: %w", err)
	}

	doctor := &models.Doctor{
		DepartmentID:  departmentID,
		Name:          name,
		Experience:    experience,
		AvailableDays: datatypes.JSON(days),
		ImageURL:      imageURL,
	}

	if err := s.doctorRepo.CreateDoctor(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	actorID := &hospitalID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "doctor_create",
		map[string]interface{}{"doctor_id": doctor.ID, "department_id": departmentID, "name": name})

	return doctor, nil
}

// UpdateDoctor updates a doctor. The calling hospital must own the
// doctor's department.
func (s *DoctorService) UpdateDoctor(id, hospitalID uint, name string, experience int, availableDays []string, imageURL string) (*models.Doctor, error) {
	doctor, err := s.getOwnedDoctor(id, hospitalID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		doctor.Name = name
	}
	if experience > 0 {
		doctor.Experience = experience
	}
	if availableDays != nil {
		days, err := json.Marshal(availableDays)
		if err != nil {
			return nil, fmt.Errorf("failed to encode available days: %w", err)
		}
		doctor.AvailableDays = datatypes.JSON(days)
	}
	if imageURL != "" {
		doctor.ImageURL = imageURL
	}

	if err := s.doctorRepo.UpdateDoctor(doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	return doctor, nil
}

// DeleteDoctor removes a doctor. The calling hospital must own the
// doctor's department.
func (s *DoctorService) DeleteDoctor(id, hospitalID uint) error {
	doctor, err := s.getOwnedDoctor(id, hospitalID)
	if err != nil {
		return err
	}

	if err := s.doctorRepo.DeleteDoctor(id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	actorID := &hospitalID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "doctor_delete",
		map[string]interface{}{"doctor_id": id, "name": doctor.Name})

	return nil
}

func (s *DoctorService) getOwnedDoctor(id, hospitalID uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetDoctorByID(id)
	if err != nil {
		return nil, err
	}

	if doctor.Department.HospitalID != hospitalID {
		return nil, errors.New("access denied: doctor belongs to another hospital")
	}

	return doctor, nil
}
