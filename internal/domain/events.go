package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subjects of the domain events published after a commit.
const (
	SubjectBookingCreated       = "booking.created"
	SubjectBookingStatusChanged = "booking.status_changed"
	SubjectPaymentSettled       = "payment.settled"
)

type BookingCreatedEvent struct {
	BookingID  int64           `json:"booking_id"`
	ListingID  int64           `json:"listing_id"`
	UserID     int64           `json:"user_id"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type BookingStatusChangedEvent struct {
	BookingID  int64         `json:"booking_id"`
	From       BookingStatus `json:"from"`
	To         BookingStatus `json:"to"`
	OccurredAt time.Time     `json:"occurred_at"`
}

type PaymentSettledEvent struct {
	PaymentID        int64           `json:"payment_id"`
	BookingID        int64           `json:"booking_id"`
	TransactionID    string          `json:"transaction_id"`
	Status           PaymentStatus   `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	BookingConfirmed bool            `json:"booking_confirmed"`
	OccurredAt       time.Time       `json:"occurred_at"`
}
