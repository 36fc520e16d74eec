package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/notification"
)

type mockPremiumStore struct {
	records map[uint]*models.PremiumHospital
	nextID  uint
}

func newMockPremiumStore() *mockPremiumStore {
	return &mockPremiumStore{records: make(map[uint]*models.PremiumHospital), nextID: 1}
}

func (m *mockPremiumStore) GetByHospitalID(hospitalID uint) (*models.PremiumHospital, error) {
	record, ok := m.records[hospitalID]
	if !ok {
		return nil, errors.New("subscription not found")
	}
	copied := *record
	return &copied, nil
}

func (m *mockPremiumStore) CreatePremium(premium *models.PremiumHospital) error {
	premium.ID = m.nextID
	m.nextID++
	copied := *premium
	m.records[premium.HospitalID] = &copied
	return nil
}

func (m *mockPremiumStore) UpdatePremium(premium *models.PremiumHospital) error {
	copied := *premium
	m.records[premium.HospitalID] = &copied
	return nil
}

const testPaymentKey = "test-payment-secret"

func signPaymentRef(hospitalID uint, ref string) string {
	mac := hmac.New(sha256.New, []byte(testPaymentKey))
	fmt.Fprintf(mac, "%d:%s", hospitalID, ref)
	return hex.EncodeToString(mac.Sum(nil))
}

func newPremiumFixture() (*PremiumService, *mockPremiumStore, *fakeNotifier) {
	store := newMockPremiumStore()
	notifier := &fakeNotifier{}
	hospitals := &mockHospitalFinder{hospitals: map[uint]*models.Hospital{
		1: {ID: 1, Name: "City General", IsApproved: true, IsActive: true},
		2: {ID: 2, Name: "Riverside Clinic", IsApproved: true, IsActive: true},
	}}

	svc := NewPremiumService(store, hospitals, &mockAuditLogger{}, notifier, testPaymentKey)
	return svc, store, notifier
}

func TestSubscribeCreatesPendingRecord(t *testing.T) {
	svc, _, _ := newPremiumFixture()

	premium, err := svc.Subscribe(1, 4999)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if premium.Status != models.PremiumStatusPending {
		t.Errorf("status %s, want pending", premium.Status)
	}
	if premium.PremiumFee != 4999 {
		t.Errorf("fee %v, want 4999", premium.PremiumFee)
	}
}

func TestSubscribeIsIdempotentWhilePending(t *testing.T) {
	svc, _, _ := newPremiumFixture()

	first, _ := svc.Subscribe(1, 4999)
	second, err := svc.Subscribe(1, 9999)
	if err != nil {
		t.Fatalf("second Subscribe failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the same pending record, got %d and %d", first.ID, second.ID)
	}
	if second.PremiumFee != first.PremiumFee {
		t.Error("a pending subscription must not be repriced by re-subscribing")
	}
}

func TestSubscribeRejectsActiveSubscription(t *testing.T) {
	svc, _, _ := newPremiumFixture()

	if _, err := svc.Subscribe(1, 4999); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if _, err := svc.ConfirmPayment(1, "pay_123", signPaymentRef(1, "pay_123")); err != nil {
		t.Fatalf("ConfirmPayment failed: %v", err)
	}

	if _, err := svc.Subscribe(1, 4999); err == nil {
		t.Fatal("expected active subscription to reject re-subscribe")
	}
}

func TestConfirmPaymentActivatesAndNotifies(t *testing.T) {
	svc, store, notifier := newPremiumFixture()

	if _, err := svc.Subscribe(1, 4999); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	premium, err := svc.ConfirmPayment(1, "pay_123", signPaymentRef(1, "pay_123"))
	if err != nil {
		t.Fatalf("ConfirmPayment failed: %v", err)
	}
	if premium.Status != models.PremiumStatusActive {
		t.Errorf("status %s, want active", premium.Status)
	}
	if premium.PaidDate == nil || premium.ExpiresAt == nil {
		t.Fatal("paid date and expiry must be set on activation")
	}
	if !premium.ExpiresAt.After(*premium.PaidDate) {
		t.Error("expiry must be after paid date")
	}

	stored, _ := store.GetByHospitalID(1)
	if stored.Status != models.PremiumStatusActive {
		t.Error("activation was not persisted")
	}

	events := notifier.published()
	if len(events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(events))
	}
	event, ok := events[0].event.(notification.PremiumActivatedEvent)
	if !ok {
		t.Fatalf("expected PremiumActivatedEvent, got %T", events[0].event)
	}
	if event.Type != notification.EventPremiumActivated {
		t.Errorf("event type %q, want %q", event.Type, notification.EventPremiumActivated)
	}
}

func TestConfirmPaymentRejectsBadSignature(t *testing.T) {
	svc, _, notifier := newPremiumFixture()

	if _, err := svc.Subscribe(1, 4999); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if _, err := svc.ConfirmPayment(1, "pay_123", "forged"); err == nil {
		t.Fatal("expected forged signature to be rejected")
	}
	if len(notifier.published()) != 0 {
		t.Error("nothing may be published for a rejected payment")
	}
}

func TestConfirmPaymentRejectsReplayedSignature(t *testing.T) {
	svc, _, notifier := newPremiumFixture()

	if _, err := svc.Subscribe(1, 4999); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if _, err := svc.Subscribe(2, 4999); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	// A signature captured from hospital 1's callback must not activate
	// hospital 2's pending subscription.
	captured := signPaymentRef(1, "pay_123")
	if _, err := svc.ConfirmPayment(2, "pay_123", captured); err == nil {
		t.Fatal("expected replayed signature to be rejected")
	}
	if len(notifier.published()) != 0 {
		t.Error("nothing may be published for a rejected payment")
	}

	if _, err := svc.ConfirmPayment(1, "pay_123", captured); err != nil {
		t.Fatalf("legitimate confirmation failed: %v", err)
	}
}

func TestConfirmPaymentRequiresPendingSubscription(t *testing.T) {
	svc, _, _ := newPremiumFixture()

	if _, err := svc.ConfirmPayment(1, "pay_123", signPaymentRef(1, "pay_123")); err == nil {
		t.Fatal("expected missing subscription to be rejected")
	}
}

func TestSubscribeRevivesExpiredSubscription(t *testing.T) {
	svc, store, _ := newPremiumFixture()

	paid := time.Now().Add(-60 * 24 * time.Hour)
	expired := paid.Add(premiumPeriod)
	store.records[1] = &models.PremiumHospital{
		ID: 1, HospitalID: 1, Status: models.PremiumStatusExpired,
		PremiumFee: 4999, PaidDate: &paid, ExpiresAt: &expired,
	}

	premium, err := svc.Subscribe(1, 5999)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if premium.Status != models.PremiumStatusPending {
		t.Errorf("status %s, want pending", premium.Status)
	}
	if premium.PremiumFee != 5999 {
		t.Errorf("renewal fee %v, want 5999", premium.PremiumFee)
	}
	if premium.PaidDate != nil || premium.ExpiresAt != nil {
		t.Error("renewal must clear paid date and expiry")
	}
}
