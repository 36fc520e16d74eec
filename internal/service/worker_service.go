package service

import (
	"context"
	"log"
	"time"

	"hospital-booking-backend/internal/repository"
)

// WorkerService runs periodic maintenance. Currently it sweeps premium
// subscriptions whose paid period has lapsed.
type WorkerService struct {
	premiumRepo *repository.PremiumRepository
}

func NewWorkerService(premiumRepo *repository.PremiumRepository) *WorkerService {
	return &WorkerService{
		premiumRepo: premiumRepo,
	}
}

// Start begins the background worker. It returns when ctx is cancelled.
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	log.Println("Background worker started - sweeping premium subscriptions hourly")

	for {
		select {
		case <-ctx.Done():
			log.Println("Background worker stopped")
			return
		case <-ticker.C:
			w.sweepExpiredSubscriptions()
		}
	}
}

func (w *WorkerService) sweepExpiredSubscriptions() {
	expired, err := w.premiumRepo.ExpireOverdue(time.Now().UTC())
	if err != nil {
		log.Printf("Error expiring premium subscriptions: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("Marked %d premium subscription(s) as expired", expired)
	}
}
