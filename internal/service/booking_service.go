package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/notification"
	"hospital-booking-backend/pkg/utils"
)

// Storage seams for the booking flow, satisfied by the repository layer.
type bookingStore interface {
	CreateBooking(booking *models.Booking) error
	GetBookingByID(id uint) (*models.Booking, error)
	UpdateBookingStatus(id uint, status string) error
	GetBookingsByPatient(patientID uint) ([]models.BookingWithDetails, error)
	GetBookingsByHospital(hospitalID uint) ([]models.BookingWithDetails, error)
	CountPendingByHospital(hospitalID uint) (int64, error)
}

type doctorFinder interface {
	GetDoctorByID(id uint) (*models.Doctor, error)
}

type hospitalFinder interface {
	GetHospitalByID(id uint) (*models.Hospital, error)
}

type userFinder interface {
	GetUserByID(id uint) (*models.User, error)
}

type auditLogger interface {
	CreateAuditLog(actorID *uint, actorRole, action string, details interface{}) error
}

type BookingService struct {
	bookingRepo  bookingStore
	doctorRepo   doctorFinder
	hospitalRepo hospitalFinder
	userRepo     userFinder
	auditRepo    auditLogger
	notifier     Notifier
}

func NewBookingService(
	bookingRepo bookingStore,
	doctorRepo doctorFinder,
	hospitalRepo hospitalFinder,
	userRepo userFinder,
	auditRepo auditLogger,
	notifier Notifier,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		notifier:     notifier,
	}
}

// CreateBookingInput carries a patient's booking request
type CreateBookingInput struct {
	HospitalID   uint
	DepartmentID uint
	DoctorID     uint
	PreferredAt  time.Time
}

// CreateBooking creates a pending booking for a patient and, once it is
// committed, notifies the hospital's live sessions. Notification delivery
// is fire-and-forget: a publish failure never affects the booking.
func (s *BookingService) CreateBooking(patientID uint, input CreateBookingInput) (*models.Booking, error) {
	hospital, err := s.hospitalRepo.GetHospitalByID(input.HospitalID)
	if err != nil {
		return nil, err
	}
	if !hospital.IsApproved {
		return nil, errors.New("hospital is not accepting bookings")
	}

	doctor, err := s.doctorRepo.GetDoctorByID(input.DoctorID)
	if err != nil {
		return nil, err
	}

	// Referential consistency: the doctor must belong to the requested
	// department, and that department to the requested hospital.
	if doctor.DepartmentID != input.DepartmentID {
		return nil, errors.New("doctor does not belong to the selected department")
	}
	if doctor.Department.HospitalID != input.HospitalID {
		return nil, errors.New("department does not belong to the selected hospital")
	}

	pending, err := s.bookingRepo.CountPendingByHospital(input.HospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending bookings: %w", err)
	}
	if hospital.AppointmentLimit > 0 && pending >= int64(hospital.AppointmentLimit) {
		return nil, errors.New("hospital has reached its appointment limit")
	}

	patient, err := s.userRepo.GetUserByID(patientID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		HospitalID:   input.HospitalID,
		DepartmentID: input.DepartmentID,
		DoctorID:     input.DoctorID,
		PatientID:    patientID,
		PreferredAt:  input.PreferredAt,
		Status:       models.BookingStatusPending,
	}

	if err := s.bookingRepo.CreateBooking(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	actorID := &patientID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RolePatient, "booking_create",
		map[string]interface{}{"booking_id": booking.ID, "hospital_id": input.HospitalID})

	// The booking is committed; push to whoever is listening right now.
	s.notifier.Publish(input.HospitalID, notification.NewBookingEvent{
		Type:        notification.EventNewBooking,
		BookingID:   booking.ID,
		PatientName: patient.Username,
		Department:  doctor.Department.Name,
		Doctor:      doctor.Name,
		PreferredAt: booking.PreferredAt,
		Timestamp:   time.Now().UTC(),
	})

	return booking, nil
}

// UpdateBookingStatus lets the owning hospital accept or reject a pending
// booking. Terminal bookings are immutable.
func (s *BookingService) UpdateBookingStatus(bookingID, hospitalID uint, status string) (*models.Booking, error) {
	if status != models.BookingStatusConfirmed && status != models.BookingStatusRejected {
		return nil, errors.New("status must be confirmed or rejected")
	}

	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	if booking.HospitalID != hospitalID {
		return nil, errors.New("access denied: booking belongs to another hospital")
	}

	if booking.IsTerminal() {
		return nil, errors.New("booking is no longer pending")
	}

	if err := s.bookingRepo.UpdateBookingStatus(bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	actorID := &hospitalID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "booking_status_update",
		map[string]interface{}{"booking_id": bookingID, "status": status})

	return booking, nil
}

// CancelBooking lets the owning patient cancel a pending booking and
// notifies the hospital.
func (s *BookingService) CancelBooking(bookingID, patientID uint) error {
	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		return err
	}

	if booking.PatientID != patientID {
		return errors.New("access denied: booking belongs to another patient")
	}

	if booking.IsTerminal() {
		return errors.New("booking is no longer pending")
	}

	if err := s.bookingRepo.UpdateBookingStatus(bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}

	actorID := &patientID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RolePatient, "booking_cancel",
		map[string]interface{}{"booking_id": bookingID})

	s.notifier.Publish(booking.HospitalID, notification.BookingCancelledEvent{
		Type:      notification.EventBookingCancelled,
		BookingID: bookingID,
		Timestamp: time.Now().UTC(),
	})

	return nil
}

// ListPatientBookings retrieves a patient's bookings
func (s *BookingService) ListPatientBookings(patientID uint) ([]models.BookingWithDetails, error) {
	return s.bookingRepo.GetBookingsByPatient(patientID)
}

// ListHospitalBookings retrieves a hospital's bookings
func (s *BookingService) ListHospitalBookings(hospitalID uint) ([]models.BookingWithDetails, error) {
	return s.bookingRepo.GetBookingsByHospital(hospitalID)
}
