package repository

import (
	"errors"

	"hospital-booking-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetDoctorByID retrieves a doctor by ID with its department preloaded
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Preload("Department").First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("doctor not found")
		}
		return nil, err
	}
	return &doctor, nil
}

// GetDoctorsByDepartment retrieves all doctors in a department
func (r *DoctorRepository) GetDoctorsByDepartment(departmentID uint) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("department_id = ?", departmentID).
		Order("name ASC").
		Find(&doctors).Error
	return doctors, err
}

// GetDoctorsByHospital retrieves all doctors of a hospital with the
// department/hospital chain flattened for listing
func (r *DoctorRepository) GetDoctorsByHospital(hospitalID uint) ([]models.DoctorWithDetails, error) {
	var doctors []models.DoctorWithDetails
	err := r.db.Model(&models.Doctor{}).
		Select(`doctors.*,
			departments.name AS department_name,
			hospitals.id AS hospital_id,
			hospitals.name AS hospital_name,
			hospitals.district AS district`).
		Joins("INNER JOIN departments ON departments.id = doctors.department_id").
		Joins("INNER JOIN hospitals ON hospitals.id = departments.hospital_id").
		Where("hospitals.id = ?", hospitalID).
		Order("doctors.name ASC").
		Scan(&doctors).Error
	return doctors, err
}

// SearchDoctors retrieves doctors across approved hospitals, optionally
// filtered by district
func (r *DoctorRepository) SearchDoctors(district string) ([]models.DoctorWithDetails, error) {
	query := r.db.Model(&models.Doctor{}).
		Select(`doctors.*,
			departments.name AS department_name,
			hospitals.id AS hospital_id,
			hospitals.name AS hospital_name,
			hospitals.district AS district`).
		Joins("INNER JOIN departments ON departments.id = doctors.department_id").
		Joins("INNER JOIN hospitals ON hospitals.id = departments.hospital_id").
		Where("hospitals.is_active = ? AND hospitals.is_approved = ?", true, true)

	if district != "" {
		query = query.Where("hospitals.district = ?", district)
	}

	var doctors []models.DoctorWithDetails
	err := query.Order("doctors.name ASC").Scan(&doctors).Error
	return doctors, err
}

// CreateDoctor creates a new doctor
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// UpdateDoctor updates an existing doctor
func (r *DoctorRepository) UpdateDoctor(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// DeleteDoctor removes a doctor
func (r *DoctorRepository) DeleteDoctor(id uint) error {
	return r.db.Delete(&models.Doctor{}, id).Error
}
