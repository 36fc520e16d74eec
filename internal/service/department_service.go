package service

import (
	"errors"
	"fmt"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/repository"
	"hospital-booking-backend/pkg/utils"
)

type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
	auditRepo      *repository.AuditRepository
}

func NewDepartmentService(
	departmentRepo *repository.DepartmentRepository,
	auditRepo *repository.AuditRepository,
) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		auditRepo:      auditRepo,
	}
}

// ListDepartments retrieves all departments of a hospital
func (s *DepartmentService) ListDepartments(hospitalID uint) ([]models.Department, error) {
	return s.departmentRepo.GetDepartmentsByHospital(hospitalID)
}

// CreateDepartment creates a department owned by the calling hospital
func (s *DepartmentService) CreateDepartment(hospitalID uint, name, imageURL string) (*models.Department, error) {
	department := &models.Department{
		HospitalID: hospitalID,
		Name:       name,
		ImageURL:   imageURL,
	}

	if err := s.departmentRepo.CreateDepartment(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	actorID := &hospitalID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "department_create",
		map[string]interface{}{"department_id": department.ID, "name": name})

	return department, nil
}

// UpdateDepartment updates a department. The calling hospital must own it.
func (s *DepartmentService) UpdateDepartment(id, hospitalID uint, name, imageURL string) (*models.Department, error) {
	department, err := s.departmentRepo.GetDepartmentByID(id)
	if err != nil {
		return nil, err
	}

	if department.HospitalID != hospitalID {
		return nil, errors.New("access denied: department belongs to another hospital")
	}

	if name != "" {
		department.Name = name
	}
	if imageURL != "" {
		department.ImageURL = imageURL
	}

	if err := s.departmentRepo.UpdateDepartment(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return department, nil
}

// DeleteDepartment removes a department and its doctors. The calling
// hospital must own it.
func (s *DepartmentService) DeleteDepartment(id, hospitalID uint) error {
	department, err := s.departmentRepo.GetDepartmentByID(id)
	if err != nil {
		return err
	}

	if department.HospitalID != hospitalID {
		return errors.New("access denied: department belongs to another hospital")
	}

	if err := s.departmentRepo.DeleteDepartment(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	actorID := &hospitalID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "department_delete",
		map[string]interface{}{"department_id": id, "name": department.Name})

	return nil
}
