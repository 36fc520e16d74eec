package notification

import "time"

// Event types pushed to hospital sessions.
const (
	EventNewBooking       = "new_booking"
	EventBookingCancelled = "booking_cancelled"
	EventPremiumActivated = "premium_activated"
)

// NewBookingEvent is the frame sent to a hospital's sessions when a
// patient creates a booking.
type NewBookingEvent struct {
	Type        string    `json:"type"`
	BookingID   uint      `json:"booking_id"`
	PatientName string    `json:"patient_name"`
	Department  string    `json:"department"`
	Doctor      string    `json:"doctor"`
	PreferredAt time.Time `json:"preferred_at"`
	Timestamp   time.Time `json:"timestamp"`
}

// BookingCancelledEvent is sent when a patient cancels a pending booking.
type BookingCancelledEvent struct {
	Type      string    `json:"type"`
	BookingID uint      `json:"booking_id"`
	Timestamp time.Time `json:"timestamp"`
}

// PremiumActivatedEvent is sent when a premium subscription payment is
// confirmed.
type PremiumActivatedEvent struct {
	Type       string    `json:"type"`
	PremiumFee float64   `json:"premium_fee"`
	PaidDate   time.Time `json:"paid_date"`
	Timestamp  time.Time `json:"timestamp"`
}
