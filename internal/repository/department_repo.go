package repository

import (
	"errors"

	"hospital-booking-backend/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetDepartmentsByHospital retrieves all departments of a hospital
func (r *DepartmentRepository) GetDepartmentsByHospital(hospitalID uint) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Where("hospital_id = ?", hospitalID).
		Order("name ASC").
		Find(&departments).Error
	return departments, err
}

// GetDepartmentByID retrieves a department by ID
func (r *DepartmentRepository) GetDepartmentByID(id uint) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("department not found")
		}
		return nil, err
	}
	return &department, nil
}

// CreateDepartment creates a new department
func (r *DepartmentRepository) CreateDepartment(department *models.Department) error {
	return r.db.Create(department).Error
}

// UpdateDepartment updates an existing department
func (r *DepartmentRepository) UpdateDepartment(department *models.Department) error {
	return r.db.Save(department).Error
}

// DeleteDepartment removes a department and its doctors
func (r *DepartmentRepository) DeleteDepartment(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("department_id = ?", id).Delete(&models.Doctor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Department{}, id).Error
	})
}
