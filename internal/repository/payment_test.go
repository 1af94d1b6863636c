package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_CreateForBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "100.00")
	guest := f.user(t, domain.RoleGuest)
	b := f.booking(t, l.ID, guest.ID, "2023-10-01", "2023-10-04")

	p, err := f.payments.CreateForBooking(ctx, 0, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, p.Status)
	assert.True(t, p.Amount.Equal(b.TotalPrice))
	assert.True(t, domain.IsPlaceholderTransactionID(p.TransactionID))

	_, err = f.payments.CreateForBooking(ctx, 0, b.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyInitiated)

	_, err = f.payments.CreateForBooking(ctx, 0, 1<<40)
	require.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestPaymentRepository_CanceledBookingRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "100.00")
	guest := f.user(t, domain.RoleGuest)
	b := f.booking(t, l.ID, guest.ID, "2023-11-01", "2023-11-02")

	_, _, err := f.bookings.Transition(ctx, b.ID, domain.BookingStatusCanceled)
	require.NoError(t, err)

	_, err = f.payments.CreateForBooking(ctx, 0, b.ID)
	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestPaymentRepository_ConcurrentInitiate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "42.50")
	guest := f.user(t, domain.RoleGuest)
	b := f.booking(t, l.ID, guest.ID, "2024-02-01", "2024-02-03")

	const n = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		already int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.payments.CreateForBooking(ctx, 0, b.ID)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
				return
			}
			if assert.ErrorIs(t, err, domain.ErrAlreadyInitiated) {
				already++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, already)

	payments, err := f.payments.ListByBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestPaymentRepository_SettleConfirmsBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "100.00")
	guest := f.user(t, domain.RoleGuest)
	b := f.booking(t, l.ID, guest.ID, "2023-12-01", "2023-12-04")

	p, err := f.payments.CreateForBooking(ctx, 0, b.ID)
	require.NoError(t, err)
	p, err = f.payments.AttachTransaction(ctx, p.ID, "tx_"+time.Now().Format("150405.000000"))
	require.NoError(t, err)
	require.False(t, domain.IsPlaceholderTransactionID(p.TransactionID))

	res, err := f.payments.Settle(ctx, p.TransactionID, domain.OutcomeSuccess)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.BookingConfirmed)
	assert.Equal(t, domain.PaymentStatusCompleted, res.Payment.Status)
	assert.Equal(t, domain.BookingStatusConfirmed, res.Booking.Status)

	// second delivery of the same outcome is a no-op
	again, err := f.payments.Settle(ctx, p.TransactionID, domain.OutcomeSuccess)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, domain.PaymentStatusCompleted, again.Payment.Status)
	assert.Equal(t, res.Payment.UpdatedAt, again.Payment.UpdatedAt)

	_, err = f.payments.Settle(ctx, p.TransactionID, domain.OutcomeFailure)
	require.ErrorIs(t, err, domain.ErrInvalidState)

	stored, err := f.payments.GetByTransactionID(ctx, p.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, stored.Status)

	_, err = f.payments.Settle(ctx, "tx_unknown", domain.OutcomeSuccess)
	require.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentRepository_FailureAllowsRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "60.00")
	guest := f.user(t, domain.RoleGuest)
	b := f.booking(t, l.ID, guest.ID, "2024-04-10", "2024-04-12")

	p, err := f.payments.CreateForBooking(ctx, 0, b.ID)
	require.NoError(t, err)

	res, err := f.payments.Settle(ctx, p.TransactionID, domain.OutcomeFailure)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, res.Payment.Status)
	assert.False(t, res.BookingConfirmed)
	assert.Equal(t, domain.BookingStatusPending, res.Booking.Status)

	retry, err := f.payments.CreateForBooking(ctx, 0, b.ID)
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, retry.ID)

	payments, err := f.payments.ListByBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestPaymentRepository_SuccessAfterCancelLeavesBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "60.00")
	guest := f.user(t, domain.RoleGuest)
	b := f.booking(t, l.ID, guest.ID, "2024-08-10", "2024-08-12")

	p, err := f.payments.CreateForBooking(ctx, 0, b.ID)
	require.NoError(t, err)
	_, _, err = f.bookings.Transition(ctx, b.ID, domain.BookingStatusCanceled)
	require.NoError(t, err)

	res, err := f.payments.Settle(ctx, p.TransactionID, domain.OutcomeSuccess)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, res.Payment.Status)
	assert.False(t, res.BookingConfirmed)
	assert.Equal(t, domain.BookingStatusCanceled, res.Booking.Status)
}

func TestPaymentRepository_SettleRacesCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "80.00")
	guest := f.user(t, domain.RoleGuest)

	const n = 5
	for i := 0; i < n; i++ {
		start := time.Date(2025, time.March, 1+i*3, 0, 0, 0, 0, time.UTC)
		b := f.booking(t, l.ID, guest.ID, start.Format(time.DateOnly), start.AddDate(0, 0, 2).Format(time.DateOnly))
		p, err := f.payments.CreateForBooking(ctx, 0, b.ID)
		require.NoError(t, err)
		p, err = f.payments.AttachTransaction(ctx, p.ID, "tx_race_"+uuid.NewString())
		require.NoError(t, err)

		var (
			wg        sync.WaitGroup
			res       *domain.SettleResult
			settleErr error
			canceled  *domain.Booking
			prev      domain.BookingStatus
			cancelErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			res, settleErr = f.payments.Settle(ctx, p.TransactionID, domain.OutcomeSuccess)
		}()
		go func() {
			defer wg.Done()
			canceled, prev, cancelErr = f.bookings.Transition(ctx, b.ID, domain.BookingStatusCanceled)
		}()
		wg.Wait()

		require.NoError(t, settleErr)
		if cancelErr != nil {
			require.ErrorIs(t, cancelErr, domain.ErrInvalidTransition)
		} else {
			assert.Equal(t, domain.BookingStatusCanceled, canceled.Status)
			// whichever committed first decides what the other one saw
			if res.BookingConfirmed {
				assert.Equal(t, domain.BookingStatusConfirmed, prev)
			} else {
				assert.Equal(t, domain.BookingStatusPending, prev)
				assert.Equal(t, domain.BookingStatusCanceled, res.Booking.Status)
			}
		}

		stored, err := f.bookings.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCanceled, stored.Status)

		paid, err := f.payments.GetByTransactionID(ctx, p.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, paid.Status)
	}
}

func TestPaymentRepository_ListAwaitingGateway(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "60.00")
	guest := f.user(t, domain.RoleGuest)
	b1 := f.booking(t, l.ID, guest.ID, "2024-10-01", "2024-10-02")
	b2 := f.booking(t, l.ID, guest.ID, "2024-10-05", "2024-10-06")

	attached, err := f.payments.CreateForBooking(ctx, 0, b1.ID)
	require.NoError(t, err)
	txID := "tx_await_" + time.Now().Format("150405.000000")
	_, err = f.payments.AttachTransaction(ctx, attached.ID, txID)
	require.NoError(t, err)

	placeholder, err := f.payments.CreateForBooking(ctx, 0, b2.ID)
	require.NoError(t, err)

	awaiting, err := f.payments.ListAwaitingGateway(ctx, 0, 1000)
	require.NoError(t, err)

	ids := make(map[int64]bool, len(awaiting))
	for _, p := range awaiting {
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
		ids[p.ID] = true
	}
	assert.True(t, ids[attached.ID])
	assert.False(t, ids[placeholder.ID])

	unattached, err := f.payments.ListUnattached(ctx, 0, 1000)
	require.NoError(t, err)
	ids = make(map[int64]bool, len(unattached))
	for _, p := range unattached {
		assert.True(t, domain.IsPlaceholderTransactionID(p.TransactionID))
		ids[p.ID] = true
	}
	assert.True(t, ids[placeholder.ID])
	assert.False(t, ids[attached.ID])
}
