package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/notification"
)

// ────────────────────────────────────────────────
// Mocks shared by the service tests
// ────────────────────────────────────────────────

type publishedEvent struct {
	hospitalID uint
	event      interface{}
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakeNotifier) Publish(hospitalID uint, event interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{hospitalID: hospitalID, event: event})
}

func (f *fakeNotifier) published() []publishedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]publishedEvent(nil), f.events...)
}

type mockBookingStore struct {
	bookings  map[uint]*models.Booking
	nextID    uint
	createErr error
	pending   int64
}

func newMockBookingStore() *mockBookingStore {
	return &mockBookingStore{bookings: make(map[uint]*models.Booking), nextID: 1}
}

func (m *mockBookingStore) CreateBooking(booking *models.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	booking.ID = m.nextID
	m.nextID++
	copied := *booking
	m.bookings[booking.ID] = &copied
	return nil
}

func (m *mockBookingStore) GetBookingByID(id uint) (*models.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	copied := *booking
	return &copied, nil
}

func (m *mockBookingStore) UpdateBookingStatus(id uint, status string) error {
	booking, ok := m.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	if booking.Status != models.BookingStatusPending {
		return errors.New("booking is no longer pending")
	}
	booking.Status = status
	return nil
}

func (m *mockBookingStore) GetBookingsByPatient(patientID uint) ([]models.BookingWithDetails, error) {
	return nil, nil
}

func (m *mockBookingStore) GetBookingsByHospital(hospitalID uint) ([]models.BookingWithDetails, error) {
	return nil, nil
}

func (m *mockBookingStore) CountPendingByHospital(hospitalID uint) (int64, error) {
	return m.pending, nil
}

type mockDoctorFinder struct {
	doctors map[uint]*models.Doctor
}

func (m *mockDoctorFinder) GetDoctorByID(id uint) (*models.Doctor, error) {
	doctor, ok := m.doctors[id]
	if !ok {
		return nil, errors.New("doctor not found")
	}
	return doctor, nil
}

type mockHospitalFinder struct {
	hospitals map[uint]*models.Hospital
}

func (m *mockHospitalFinder) GetHospitalByID(id uint) (*models.Hospital, error) {
	hospital, ok := m.hospitals[id]
	if !ok {
		return nil, errors.New("hospital not found")
	}
	return hospital, nil
}

type mockUserFinder struct {
	users map[uint]*models.User
}

func (m *mockUserFinder) GetUserByID(id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

type mockAuditLogger struct{}

func (m *mockAuditLogger) CreateAuditLog(actorID *uint, actorRole, action string, details interface{}) error {
	return nil
}

// ────────────────────────────────────────────────
// Fixtures
// ────────────────────────────────────────────────

func newBookingFixture() (*BookingService, *mockBookingStore, *fakeNotifier) {
	store := newMockBookingStore()
	notifier := &fakeNotifier{}

	doctors := &mockDoctorFinder{doctors: map[uint]*models.Doctor{
		10: {
			ID:           10,
			DepartmentID: 5,
			Name:         "Dr. Rao",
			Department:   models.Department{ID: 5, HospitalID: 1, Name: "Cardiology"},
		},
	}}
	hospitals := &mockHospitalFinder{hospitals: map[uint]*models.Hospital{
		1: {ID: 1, Name: "City General", IsApproved: true, IsActive: true, AppointmentLimit: 50},
		2: {ID: 2, Name: "Unapproved Clinic", IsApproved: false, IsActive: true, AppointmentLimit: 50},
	}}
	users := &mockUserFinder{users: map[uint]*models.User{
		100: {ID: 100, Username: "alice", Email: "alice@example.com"},
	}}

	svc := NewBookingService(store, doctors, hospitals, users, &mockAuditLogger{}, notifier)
	return svc, store, notifier
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		HospitalID:   1,
		DepartmentID: 5,
		DoctorID:     10,
		PreferredAt:  time.Now().Add(48 * time.Hour),
	}
}

// ────────────────────────────────────────────────
// Tests for CreateBooking
// ────────────────────────────────────────────────

func TestCreateBookingPublishesToHospital(t *testing.T) {
	svc, _, notifier := newBookingFixture()

	booking, err := svc.CreateBooking(100, validInput())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Errorf("expected pending status, got %s", booking.Status)
	}

	events := notifier.published()
	if len(events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(events))
	}
	if events[0].hospitalID != 1 {
		t.Errorf("published to hospital %d, want 1", events[0].hospitalID)
	}

	event, ok := events[0].event.(notification.NewBookingEvent)
	if !ok {
		t.Fatalf("expected NewBookingEvent, got %T", events[0].event)
	}
	if event.Type != notification.EventNewBooking {
		t.Errorf("event type %q, want %q", event.Type, notification.EventNewBooking)
	}
	if event.BookingID != booking.ID {
		t.Errorf("event booking id %d, want %d", event.BookingID, booking.ID)
	}
	if event.PatientName != "alice" {
		t.Errorf("event patient name %q, want alice", event.PatientName)
	}
}

func TestCreateBookingDoesNotPublishOnStoreError(t *testing.T) {
	svc, store, notifier := newBookingFixture()
	store.createErr = errors.New("constraint violation")

	if _, err := svc.CreateBooking(100, validInput()); err == nil {
		t.Fatal("expected error from failed create")
	}

	if len(notifier.published()) != 0 {
		t.Error("nothing may be published when the booking was not committed")
	}
}

func TestCreateBookingRejectsDoctorOutsideDepartment(t *testing.T) {
	svc, _, notifier := newBookingFixture()

	input := validInput()
	input.DepartmentID = 6 // doctor 10 belongs to department 5

	if _, err := svc.CreateBooking(100, input); err == nil {
		t.Fatal("expected referential check to fail")
	}
	if len(notifier.published()) != 0 {
		t.Error("no event may be published for a rejected booking")
	}
}

func TestCreateBookingRejectsUnapprovedHospital(t *testing.T) {
	svc, _, _ := newBookingFixture()

	input := validInput()
	input.HospitalID = 2

	if _, err := svc.CreateBooking(100, input); err == nil {
		t.Fatal("expected unapproved hospital to be rejected")
	}
}

func TestCreateBookingEnforcesAppointmentLimit(t *testing.T) {
	svc, store, _ := newBookingFixture()
	store.pending = 50

	if _, err := svc.CreateBooking(100, validInput()); err == nil {
		t.Fatal("expected appointment limit to be enforced")
	}
}

// ────────────────────────────────────────────────
// Tests for status transitions
// ────────────────────────────────────────────────

func TestUpdateBookingStatusAccept(t *testing.T) {
	svc, _, _ := newBookingFixture()

	booking, err := svc.CreateBooking(100, validInput())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	updated, err := svc.UpdateBookingStatus(booking.ID, 1, models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateBookingStatus failed: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("status %s, want confirmed", updated.Status)
	}
}

func TestUpdateBookingStatusTerminalIsImmutable(t *testing.T) {
	svc, _, _ := newBookingFixture()

	booking, _ := svc.CreateBooking(100, validInput())
	if _, err := svc.UpdateBookingStatus(booking.ID, 1, models.BookingStatusRejected); err != nil {
		t.Fatalf("first transition failed: %v", err)
	}

	if _, err := svc.UpdateBookingStatus(booking.ID, 1, models.BookingStatusConfirmed); err == nil {
		t.Fatal("expected terminal booking to be immutable")
	}
}

func TestUpdateBookingStatusForeignHospitalDenied(t *testing.T) {
	svc, _, _ := newBookingFixture()

	booking, _ := svc.CreateBooking(100, validInput())

	if _, err := svc.UpdateBookingStatus(booking.ID, 2, models.BookingStatusConfirmed); err == nil {
		t.Fatal("expected foreign hospital to be denied")
	}
}

func TestUpdateBookingStatusRejectsInvalidValue(t *testing.T) {
	svc, _, _ := newBookingFixture()

	booking, _ := svc.CreateBooking(100, validInput())

	if _, err := svc.UpdateBookingStatus(booking.ID, 1, models.BookingStatusCancelled); err == nil {
		t.Fatal("hospitals may only confirm or reject")
	}
}

func TestCancelBookingNotifiesHospital(t *testing.T) {
	svc, _, notifier := newBookingFixture()

	booking, _ := svc.CreateBooking(100, validInput())

	if err := svc.CancelBooking(booking.ID, 100); err != nil {
		t.Fatalf("CancelBooking failed: %v", err)
	}

	events := notifier.published()
	if len(events) != 2 {
		t.Fatalf("expected create + cancel events, got %d", len(events))
	}
	cancel, ok := events[1].event.(notification.BookingCancelledEvent)
	if !ok {
		t.Fatalf("expected BookingCancelledEvent, got %T", events[1].event)
	}
	if cancel.BookingID != booking.ID {
		t.Errorf("cancel event booking id %d, want %d", cancel.BookingID, booking.ID)
	}
}

func TestCancelBookingForeignPatientDenied(t *testing.T) {
	svc, _, _ := newBookingFixture()

	booking, _ := svc.CreateBooking(100, validInput())

	if err := svc.CancelBooking(booking.ID, 101); err == nil {
		t.Fatal("expected foreign patient to be denied")
	}
}
