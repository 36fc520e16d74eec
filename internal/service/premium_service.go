package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"hospital-booking-backend/internal/models"
	"hospital-booking-backend/internal/notification"
	"hospital-booking-backend/pkg/utils"
)

// Active subscriptions run for this long from the paid date.
const premiumPeriod = 30 * 24 * time.Hour

type premiumStore interface {
	GetByHospitalID(hospitalID uint) (*models.PremiumHospital, error)
	CreatePremium(premium *models.PremiumHospital) error
	UpdatePremium(premium *models.PremiumHospital) error
}

type PremiumService struct {
	premiumRepo  premiumStore
	hospitalRepo hospitalFinder
	auditRepo    auditLogger
	notifier     Notifier
	paymentKey   string
}

func NewPremiumService(
	premiumRepo premiumStore,
	hospitalRepo hospitalFinder,
	auditRepo auditLogger,
	notifier Notifier,
	paymentKey string,
) *PremiumService {
	return &PremiumService{
		premiumRepo:  premiumRepo,
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
		notifier:     notifier,
		paymentKey:   paymentKey,
	}
}

// GetStatus retrieves a hospital's subscription record
func (s *PremiumService) GetStatus(hospitalID uint) (*models.PremiumHospital, error) {
	return s.premiumRepo.GetByHospitalID(hospitalID)
}

// Subscribe creates (or revives) a pending subscription for the hospital.
// Subscribing while a pending record exists returns that record, so the
// operation is idempotent per hospital.
func (s *PremiumService) Subscribe(hospitalID uint, fee float64) (*models.PremiumHospital, error) {
	if _, err := s.hospitalRepo.GetHospitalByID(hospitalID); err != nil {
		return nil, err
	}

	premium, err := s.premiumRepo.GetByHospitalID(hospitalID)
	if err == nil {
		switch premium.Status {
		case models.PremiumStatusActive:
			return nil, errors.New("hospital already has an active subscription")
		case models.PremiumStatusPending:
			return premium, nil
		case models.PremiumStatusExpired:
			premium.Status = models.PremiumStatusPending
			premium.PremiumFee = fee
			premium.PaidDate = nil
			premium.ExpiresAt = nil
			if err := s.premiumRepo.UpdatePremium(premium); err != nil {
				return nil, fmt.Errorf("failed to renew subscription: %w", err)
			}
			return premium, nil
		}
	}

	premium = &models.PremiumHospital{
		HospitalID: hospitalID,
		Status:     models.PremiumStatusPending,
		PremiumFee: fee,
	}
	if err := s.premiumRepo.CreatePremium(premium); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	actorID := &hospitalID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "premium_subscribe",
		map[string]interface{}{"hospital_id": hospitalID, "fee": fee})

	return premium, nil
}

// ConfirmPayment activates a pending subscription after verifying the
// gateway callback signature. Activation is published to the hospital's
// live sessions after the record is committed.
func (s *PremiumService) ConfirmPayment(hospitalID uint, paymentRef, signature string) (*models.PremiumHospital, error) {
	if !s.verifySignature(hospitalID, paymentRef, signature) {
		return nil, errors.New("invalid payment signature")
	}

	premium, err := s.premiumRepo.GetByHospitalID(hospitalID)
	if err != nil {
		return nil, err
	}

	if premium.Status != models.PremiumStatusPending {
		return nil, errors.New("subscription is not awaiting payment")
	}

	now := time.Now().UTC()
	expires := now.Add(premiumPeriod)
	premium.Status = models.PremiumStatusActive
	premium.PaidDate = &now
	premium.ExpiresAt = &expires

	if err := s.premiumRepo.UpdatePremium(premium); err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}

	actorID := &hospitalID
	_ = s.auditRepo.CreateAuditLog(actorID, utils.RoleHospital, "premium_payment_confirm",
		map[string]interface{}{"hospital_id": hospitalID, "payment_ref": paymentRef})

	s.notifier.Publish(hospitalID, notification.PremiumActivatedEvent{
		Type:       notification.EventPremiumActivated,
		PremiumFee: premium.PremiumFee,
		PaidDate:   now,
		Timestamp:  now,
	})

	return premium, nil
}

// verifySignature checks the HMAC-SHA256 signature the payment gateway
// attaches to its confirmation callback. The hospital id is part of the
// signed material, so a signature captured from one hospital's callback
// cannot be replayed to activate another hospital's subscription.
func (s *PremiumService) verifySignature(hospitalID uint, paymentRef, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.paymentKey))
	fmt.Fprintf(mac, "%d:%s", hospitalID, paymentRef)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
