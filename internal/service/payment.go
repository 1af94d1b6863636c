package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/metrics"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentOptions struct {
	// PollMinAge is how old a pending payment must be before SyncPending asks the gateway about it.
	PollMinAge time.Duration
	// PollBatch caps the payments handled per SyncPending call.
	PollBatch int
	// UnattachedTTL is how long a payment may keep its placeholder transaction id
	// before SyncPending marks it failed.
	UnattachedTTL time.Duration
}

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	userRepo    ports.UserRepo
	gateway     ports.PaymentGateway
	notifier    ports.BookingNotifier
	publisher   ports.EventPublisher
	metrics     *metrics.Metrics
	logger      logger.Logger
	opts        PaymentOptions
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	logger logger.Logger,
	opts PaymentOptions,
) *PaymentService {
	if opts.PollBatch <= 0 {
		opts.PollBatch = 100
	}
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		notifier:    notifier,
		publisher:   publisher,
		metrics:     m,
		logger:      logger,
		opts:        opts,
	}
}

// InitiatePayment records a pending payment for the booking and charges it
// through the gateway. The payment row is committed before the gateway is
// called, so a second initiate for the same booking fails with
// ErrAlreadyInitiated while the first one is in flight.
func (s *PaymentService) InitiatePayment(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.CreateForBooking(ctx, 0, bookingID)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	s.metrics.PaymentInitiated()

	// a client disconnect must not abandon a charge the gateway may be processing
	ctx = context.WithoutCancel(ctx)

	res, err := s.gateway.Charge(ctx, domain.ChargeRequest{
		Reference: payment.TransactionID,
		BookingID: bookingID,
		Amount:    payment.Amount,
	})
	if err != nil {
		s.metrics.GatewayError("charge")
		if !errors.Is(err, domain.ErrChargeRejected) {
			// the charge may exist at the gateway; SyncPending expires the
			// placeholder after UnattachedTTL
			s.logger.Warn("gateway charge outcome unknown, payment left pending",
				logger.Int64("payment_id", payment.ID),
				logger.Int64("booking_id", bookingID),
				logger.String("reference", payment.TransactionID),
				logger.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
		}

		s.logger.Warn("gateway rejected charge",
			logger.Int64("payment_id", payment.ID),
			logger.Int64("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		// frees the booking for another attempt
		if _, serr := s.paymentRepo.Settle(ctx, payment.TransactionID, domain.OutcomeFailure); serr != nil {
			s.logger.Error("failed to mark payment failed",
				logger.Int64("payment_id", payment.ID),
				logger.String("error", serr.Error()),
			)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	payment, err = s.paymentRepo.AttachTransaction(ctx, payment.ID, res.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("attach transaction: %w", err)
	}

	s.logger.Info("payment initiated",
		logger.Int64("payment_id", payment.ID),
		logger.Int64("booking_id", bookingID),
		logger.String("transaction_id", payment.TransactionID),
		logger.String("gateway_status", string(res.Status)),
	)

	if res.Status.IsTerminal() {
		return s.Reconcile(ctx, payment.TransactionID, res.Status.Outcome())
	}

	return payment, nil
}

// Reconcile applies a gateway outcome. Repeating an outcome that is already
// applied returns the settled payment without changing anything.
func (s *PaymentService) Reconcile(ctx context.Context, transactionID string, outcome domain.Outcome) (*domain.Payment, error) {
	if outcome == domain.OutcomePending {
		payment, err := s.paymentRepo.GetByTransactionID(ctx, transactionID)
		if err != nil {
			return nil, fmt.Errorf("get payment: %w", err)
		}
		return payment, nil
	}

	res, err := s.paymentRepo.Settle(ctx, transactionID, outcome)
	if err != nil {
		return nil, fmt.Errorf("reconcile payment: %w", err)
	}

	if !res.Changed {
		s.logger.Debug("payment already settled",
			logger.String("transaction_id", transactionID),
			logger.String("status", string(res.Payment.Status)),
		)
		return res.Payment, nil
	}

	s.metrics.PaymentReconciled(string(outcome))
	if res.BookingConfirmed {
		s.metrics.BookingTransitioned(string(domain.BookingStatusConfirmed))
	}
	s.logger.Info("payment settled",
		logger.Int64("payment_id", res.Payment.ID),
		logger.Int64("booking_id", res.Payment.BookingID),
		logger.String("status", string(res.Payment.Status)),
		logger.Any("booking_confirmed", res.BookingConfirmed),
	)

	publish(ctx, s.publisher, s.logger, domain.SubjectPaymentSettled, domain.PaymentSettledEvent{
		PaymentID:        res.Payment.ID,
		BookingID:        res.Payment.BookingID,
		TransactionID:    res.Payment.TransactionID,
		Status:           res.Payment.Status,
		Amount:           res.Payment.Amount,
		BookingConfirmed: res.BookingConfirmed,
		OccurredAt:       res.Payment.UpdatedAt,
	})

	go s.notifySettled(context.WithoutCancel(ctx), res.Booking, res.Payment)

	return res.Payment, nil
}

func (s *PaymentService) notifySettled(ctx context.Context, b *domain.Booking, p *domain.Payment) {
	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		s.logger.Error("failed to get user for payment notification",
			logger.Int64("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyPaymentSettled(ctx, user, b, p)
}

// SyncPending asks the gateway about pending payments and reconciles those
// that reached a terminal status. Payments whose charge was never recorded
// are failed once they outlive UnattachedTTL. It returns how many payments
// were settled.
func (s *PaymentService) SyncPending(ctx context.Context) (int, error) {
	pending, err := s.paymentRepo.ListAwaitingGateway(ctx, s.opts.PollMinAge, s.opts.PollBatch)
	if err != nil {
		return 0, fmt.Errorf("list pending payments: %w", err)
	}

	settled := 0
	for _, p := range pending {
		if ctx.Err() != nil {
			return settled, ctx.Err()
		}

		status, err := s.gateway.Status(ctx, p.TransactionID)
		if err != nil {
			s.metrics.GatewayError("status")
			s.logger.Warn("gateway status failed",
				logger.Int64("payment_id", p.ID),
				logger.String("transaction_id", p.TransactionID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !status.IsTerminal() {
			continue
		}

		if _, err = s.Reconcile(ctx, p.TransactionID, status.Outcome()); err != nil {
			s.logger.Warn("failed to reconcile payment",
				logger.Int64("payment_id", p.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		settled++
	}

	if s.opts.UnattachedTTL <= 0 {
		return settled, nil
	}

	unattached, err := s.paymentRepo.ListUnattached(ctx, s.opts.UnattachedTTL, s.opts.PollBatch)
	if err != nil {
		return settled, fmt.Errorf("list unattached payments: %w", err)
	}
	for _, p := range unattached {
		if _, err = s.Reconcile(ctx, p.TransactionID, domain.OutcomeFailure); err != nil {
			s.logger.Warn("failed to expire unattached payment",
				logger.Int64("payment_id", p.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		settled++
	}

	return settled, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *PaymentService) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	return s.paymentRepo.ListByBooking(ctx, bookingID)
}
