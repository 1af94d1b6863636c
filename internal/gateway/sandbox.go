package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
)

// Sandbox accepts every charge and keeps it pending forever. Used for local
// runs without a provider: payments are settled only by posting an outcome
// to /api/payments/callback.
type Sandbox struct{}

func NewSandbox() *Sandbox {
	return &Sandbox{}
}

func (s *Sandbox) Charge(_ context.Context, _ domain.ChargeRequest) (*domain.ChargeResult, error) {
	return &domain.ChargeResult{
		TransactionID: "sbx_" + uuid.NewString(),
		Status:        domain.PaymentStatusPending,
	}, nil
}

func (s *Sandbox) Status(_ context.Context, _ string) (domain.PaymentStatus, error) {
	return domain.PaymentStatusPending, nil
}
