package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentDeps struct {
	payments  *mocks.MockPaymentRepo
	users     *mocks.MockUserRepo
	gateway   *mocks.MockPaymentGateway
	notifier  *mocks.MockBookingNotifier
	publisher *mocks.MockEventPublisher
}

func newPaymentService(t *testing.T, opts PaymentOptions) (*PaymentService, *paymentDeps) {
	t.Helper()
	d := &paymentDeps{
		payments:  mocks.NewMockPaymentRepo(t),
		users:     mocks.NewMockUserRepo(t),
		gateway:   mocks.NewMockPaymentGateway(t),
		notifier:  mocks.NewMockBookingNotifier(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	svc := NewPaymentService(d.payments, d.users, d.gateway, d.notifier, d.publisher, nil, newTestLogger(t), opts)
	return svc, d
}

func pendingPayment(id, bookingID int64, txID string) *domain.Payment {
	return &domain.Payment{
		ID:            id,
		BookingID:     bookingID,
		Amount:        decimal.RequireFromString("300.00"),
		Status:        domain.PaymentStatusPending,
		TransactionID: txID,
	}
}

// expectSettledNotification wires the async user lookup and notifier call
// made after a payment changes state.
func (d *paymentDeps) expectSettledNotification(userID int64) <-chan struct{} {
	done := make(chan struct{})
	d.users.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID}, nil)
	d.notifier.EXPECT().NotifyPaymentSettled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Booking, *domain.Payment) { close(done) }).Return()
	return done
}

func TestPaymentService_InitiatePayment_Pending(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	created := pendingPayment(1, 5, "local-abc")
	attached := pendingPayment(1, 5, "tx_1")

	d.payments.EXPECT().CreateForBooking(mock.Anything, int64(0), int64(5)).Return(created, nil)
	d.gateway.EXPECT().Charge(mock.Anything, domain.ChargeRequest{
		Reference: "local-abc", BookingID: 5, Amount: created.Amount,
	}).Return(&domain.ChargeResult{TransactionID: "tx_1", Status: domain.PaymentStatusPending}, nil)
	d.payments.EXPECT().AttachTransaction(mock.Anything, int64(1), "tx_1").Return(attached, nil)

	p, err := svc.InitiatePayment(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "tx_1", p.TransactionID)
	assert.Equal(t, domain.PaymentStatusPending, p.Status)
}

func TestPaymentService_InitiatePayment_SynchronousSuccess(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	created := pendingPayment(1, 5, "local-abc")
	attached := pendingPayment(1, 5, "tx_1")
	completed := pendingPayment(1, 5, "tx_1")
	completed.Status = domain.PaymentStatusCompleted
	booking := &domain.Booking{ID: 5, UserID: 2, Status: domain.BookingStatusConfirmed}

	d.payments.EXPECT().CreateForBooking(mock.Anything, int64(0), int64(5)).Return(created, nil)
	d.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(&domain.ChargeResult{TransactionID: "tx_1", Status: domain.PaymentStatusCompleted}, nil)
	d.payments.EXPECT().AttachTransaction(mock.Anything, int64(1), "tx_1").Return(attached, nil)
	d.payments.EXPECT().Settle(mock.Anything, "tx_1", domain.OutcomeSuccess).Return(&domain.SettleResult{
		Payment: completed, Booking: booking, Changed: true, BookingConfirmed: true,
	}, nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.SubjectPaymentSettled, mock.MatchedBy(func(e domain.PaymentSettledEvent) bool {
		return e.PaymentID == 1 && e.Status == domain.PaymentStatusCompleted && e.BookingConfirmed
	})).Return(nil)
	done := d.expectSettledNotification(2)

	p, err := svc.InitiatePayment(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
	waitFor(t, done)
}

func TestPaymentService_InitiatePayment_AlreadyInitiated(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	d.payments.EXPECT().CreateForBooking(mock.Anything, int64(0), int64(5)).Return(nil, domain.ErrAlreadyInitiated)

	_, err := svc.InitiatePayment(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrAlreadyInitiated)
}

func TestPaymentService_InitiatePayment_CanceledBooking(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	d.payments.EXPECT().CreateForBooking(mock.Anything, int64(0), int64(5)).Return(nil, domain.ErrInvalidState)

	_, err := svc.InitiatePayment(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestPaymentService_InitiatePayment_ChargeRejected(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	created := pendingPayment(1, 5, "local-abc")
	failed := pendingPayment(1, 5, "local-abc")
	failed.Status = domain.PaymentStatusFailed

	d.payments.EXPECT().CreateForBooking(mock.Anything, int64(0), int64(5)).Return(created, nil)
	d.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("charge: %w: status 402", domain.ErrChargeRejected))
	d.payments.EXPECT().Settle(mock.Anything, "local-abc", domain.OutcomeFailure).
		Return(&domain.SettleResult{Payment: failed, Changed: true}, nil)

	_, err := svc.InitiatePayment(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestPaymentService_InitiatePayment_AmbiguousGatewayErrorLeavesPending(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	d.payments.EXPECT().CreateForBooking(mock.Anything, int64(0), int64(5)).
		Return(pendingPayment(1, 5, "local-abc"), nil)
	d.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(nil, errors.New("charge: send request: context deadline exceeded"))

	_, err := svc.InitiatePayment(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	// no Settle expectation: the mock fails the test if the payment is marked failed
}

func TestPaymentService_InitiatePayment_CallerCancelDoesNotReachGateway(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	ctx, cancel := context.WithCancel(context.Background())

	d.payments.EXPECT().CreateForBooking(mock.Anything, int64(0), int64(5)).
		Return(pendingPayment(1, 5, "local-abc"), nil)
	d.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ domain.ChargeRequest) {
			cancel()
			assert.NoError(t, ctx.Err())
		}).
		Return(&domain.ChargeResult{TransactionID: "tx_1", Status: domain.PaymentStatusPending}, nil)
	d.payments.EXPECT().AttachTransaction(mock.Anything, int64(1), "tx_1").
		Return(pendingPayment(1, 5, "tx_1"), nil)

	p, err := svc.InitiatePayment(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "tx_1", p.TransactionID)
}

func TestPaymentService_Reconcile_Idempotent(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	completed := pendingPayment(1, 5, "tx_1")
	completed.Status = domain.PaymentStatusCompleted
	booking := &domain.Booking{ID: 5, UserID: 2, Status: domain.BookingStatusConfirmed}

	d.payments.EXPECT().Settle(mock.Anything, "tx_1", domain.OutcomeSuccess).Return(&domain.SettleResult{
		Payment: completed, Booking: booking, Changed: true, BookingConfirmed: true,
	}, nil).Once()
	d.payments.EXPECT().Settle(mock.Anything, "tx_1", domain.OutcomeSuccess).Return(&domain.SettleResult{
		Payment: completed, Booking: booking,
	}, nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, domain.SubjectPaymentSettled, mock.Anything).Return(nil).Once()
	done := d.expectSettledNotification(2)

	first, err := svc.Reconcile(context.Background(), "tx_1", domain.OutcomeSuccess)
	require.NoError(t, err)
	waitFor(t, done)

	second, err := svc.Reconcile(context.Background(), "tx_1", domain.OutcomeSuccess)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPaymentService_Reconcile_Errors(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	d.payments.EXPECT().Settle(mock.Anything, "tx_missing", domain.OutcomeSuccess).Return(nil, domain.ErrPaymentNotFound)
	d.payments.EXPECT().Settle(mock.Anything, "tx_1", domain.OutcomeFailure).Return(nil, domain.ErrInvalidState)

	_, err := svc.Reconcile(context.Background(), "tx_missing", domain.OutcomeSuccess)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Reconcile(context.Background(), "tx_1", domain.OutcomeFailure)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestPaymentService_Reconcile_PendingOutcomeReads(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	d.payments.EXPECT().GetByTransactionID(mock.Anything, "tx_1").Return(pendingPayment(1, 5, "tx_1"), nil)

	p, err := svc.Reconcile(context.Background(), "tx_1", domain.OutcomePending)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, p.Status)
}

func TestPaymentService_SyncPending(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{PollMinAge: time.Minute, PollBatch: 10, UnattachedTTL: time.Hour})

	failed := pendingPayment(2, 6, "tx_2")
	failed.Status = domain.PaymentStatusFailed
	expired := pendingPayment(4, 8, "local-old")
	expired.Status = domain.PaymentStatusFailed

	d.payments.EXPECT().ListAwaitingGateway(mock.Anything, time.Minute, 10).Return([]*domain.Payment{
		pendingPayment(1, 5, "tx_1"),
		pendingPayment(2, 6, "tx_2"),
		pendingPayment(3, 7, "tx_3"),
	}, nil)
	d.gateway.EXPECT().Status(mock.Anything, "tx_1").Return(domain.PaymentStatusPending, nil)
	d.gateway.EXPECT().Status(mock.Anything, "tx_2").Return(domain.PaymentStatusFailed, nil)
	d.gateway.EXPECT().Status(mock.Anything, "tx_3").Return("", errors.New("timeout"))
	d.payments.EXPECT().Settle(mock.Anything, "tx_2", domain.OutcomeFailure).Return(&domain.SettleResult{
		Payment: failed, Booking: &domain.Booking{ID: 6, UserID: 2}, Changed: true,
	}, nil)

	d.payments.EXPECT().ListUnattached(mock.Anything, time.Hour, 10).Return([]*domain.Payment{
		pendingPayment(4, 8, "local-old"),
	}, nil)
	d.payments.EXPECT().Settle(mock.Anything, "local-old", domain.OutcomeFailure).Return(&domain.SettleResult{
		Payment: expired, Booking: &domain.Booking{ID: 8, UserID: 2}, Changed: true,
	}, nil)

	d.publisher.EXPECT().Publish(mock.Anything, domain.SubjectPaymentSettled, mock.Anything).Return(nil).Times(2)
	d.users.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	notified := make(chan struct{}, 2)
	d.notifier.EXPECT().NotifyPaymentSettled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Booking, *domain.Payment) { notified <- struct{}{} }).
		Return().Times(2)

	settled, err := svc.SyncPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, settled)
	for i := 0; i < 2; i++ {
		select {
		case <-notified:
		case <-time.After(time.Second):
			t.Fatal("notification was not sent")
		}
	}
}

func TestPaymentService_SyncPending_ListError(t *testing.T) {
	svc, d := newPaymentService(t, PaymentOptions{})

	d.payments.EXPECT().ListAwaitingGateway(mock.Anything, time.Duration(0), 100).Return(nil, domain.ErrStoreUnavailable)

	_, err := svc.SyncPending(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
