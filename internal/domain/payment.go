package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Outcome is a gateway verdict for a transaction.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomePending Outcome = "pending"
)

// ParseOutcome accepts success|failure|pending and the payment status
// spellings completed|failed.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success", "completed":
		return OutcomeSuccess, nil
	case "failure", "failed":
		return OutcomeFailure, nil
	case "pending":
		return OutcomePending, nil
	}
	return "", fmt.Errorf("%w: unknown outcome %q", ErrValidation, s)
}

// Status is the payment status an outcome settles to.
func (o Outcome) Status() PaymentStatus {
	switch o {
	case OutcomeSuccess:
		return PaymentStatusCompleted
	case OutcomeFailure:
		return PaymentStatusFailed
	}
	return PaymentStatusPending
}

// Outcome is the gateway verdict a payment status corresponds to.
func (s PaymentStatus) Outcome() Outcome {
	switch s {
	case PaymentStatusCompleted:
		return OutcomeSuccess
	case PaymentStatusFailed:
		return OutcomeFailure
	}
	return OutcomePending
}

type Payment struct {
	ID            int64           `json:"id"`
	BookingID     int64           `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        PaymentStatus   `json:"payment_status"`
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p *Payment) IsActive() bool {
	return p.Status != PaymentStatusFailed
}

// Settle applies a terminal outcome. Re-applying the outcome a payment
// already carries is a no-op (changed == false); an opposite outcome on a
// settled payment is ErrInvalidState.
func (p *Payment) Settle(o Outcome) (changed bool, err error) {
	target := o.Status()
	if target == PaymentStatusPending {
		return false, nil
	}
	if p.Status == target {
		return false, nil
	}
	if p.Status != PaymentStatusPending {
		return false, fmt.Errorf("%w: payment %d is already %s", ErrInvalidState, p.ID, p.Status)
	}
	p.Status = target
	return true, nil
}

const placeholderPrefix = "local-"

// NewPlaceholderTransactionID returns the reference a payment carries until
// the gateway issues its own transaction id.
func NewPlaceholderTransactionID() string {
	return placeholderPrefix + uuid.NewString()
}

func IsPlaceholderTransactionID(id string) bool {
	return strings.HasPrefix(id, placeholderPrefix)
}

// ChargeRequest is what is sent to the payment gateway.
type ChargeRequest struct {
	Reference string
	BookingID int64
	Amount    decimal.Decimal
}

// ChargeResult is the gateway answer to a charge.
type ChargeResult struct {
	TransactionID string
	Status        PaymentStatus
}

// SettleResult describes what a reconciliation did.
type SettleResult struct {
	Payment          *Payment
	Booking          *Booking
	Changed          bool
	BookingConfirmed bool
}
