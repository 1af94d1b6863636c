package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type PaymentRepo interface {
	CreateForBooking(ctx context.Context, paymentID, bookingID int64) (*domain.Payment, error)
	AttachTransaction(ctx context.Context, paymentID int64, transactionID string) (*domain.Payment, error)
	Settle(ctx context.Context, transactionID string, outcome domain.Outcome) (*domain.SettleResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error)
	ListAwaitingGateway(ctx context.Context, minAge time.Duration, limit int) ([]*domain.Payment, error)
	ListUnattached(ctx context.Context, minAge time.Duration, limit int) ([]*domain.Payment, error)
}

type PaymentGateway interface {
	Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error)
	Status(ctx context.Context, transactionID string) (domain.PaymentStatus, error)
}
