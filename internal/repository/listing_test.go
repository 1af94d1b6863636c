package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_EmailTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, domain.RoleGuest)

	got, err := f.users.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = f.users.Create(ctx, domain.CreateUserInput{
		FirstName: "Other", LastName: "User", Email: u.Email, Role: domain.RoleHost,
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	_, err = f.users.GetByID(ctx, 1<<40)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListingRepository_UpdateOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "99.99")
	stranger := f.user(t, domain.RoleHost)

	price := decimal.RequireFromString("120.50")
	name := "Renovated flat"
	_, err := f.listings.Update(ctx, domain.UpdateListingInput{ListingID: l.ID, HostID: stranger.ID, Name: &name})
	require.ErrorIs(t, err, domain.ErrForbidden)

	got, err := f.listings.Update(ctx, domain.UpdateListingInput{
		ListingID: l.ID, HostID: l.HostID, Name: &name, PricePerNight: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, "120.50", got.PricePerNight.StringFixed(2))
	assert.Equal(t, l.Location, got.Location)
}

func TestListingRepository_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "75.00")
	guest := f.user(t, domain.RoleGuest)
	b := f.booking(t, l.ID, guest.ID, "2024-06-01", "2024-06-04")
	p, err := f.payments.CreateForBooking(ctx, 0, b.ID)
	require.NoError(t, err)
	_, err = f.reviews.Create(ctx, domain.CreateReviewInput{ListingID: l.ID, UserID: guest.ID, Rating: 5, Comment: "Great"})
	require.NoError(t, err)

	require.ErrorIs(t, f.listings.Delete(ctx, l.ID, guest.ID), domain.ErrForbidden)
	require.NoError(t, f.listings.Delete(ctx, l.ID, l.HostID))

	_, err = f.listings.GetByID(ctx, l.ID)
	require.ErrorIs(t, err, domain.ErrListingNotFound)
	_, err = f.bookings.GetByID(ctx, b.ID)
	require.ErrorIs(t, err, domain.ErrBookingNotFound)
	_, err = f.payments.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, domain.ErrPaymentNotFound)

	reviews, err := f.reviews.ListByListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	require.ErrorIs(t, f.listings.Delete(ctx, l.ID, l.HostID), domain.ErrListingNotFound)
}

func TestListingRepository_DeleteRacesSettle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "75.00")
	guest := f.user(t, domain.RoleGuest)

	var txIDs []string
	for i := 0; i < 4; i++ {
		start := time.Date(2025, time.May, 1+i*3, 0, 0, 0, 0, time.UTC)
		b := f.booking(t, l.ID, guest.ID, start.Format(time.DateOnly), start.AddDate(0, 0, 2).Format(time.DateOnly))
		p, err := f.payments.CreateForBooking(ctx, 0, b.ID)
		require.NoError(t, err)
		p, err = f.payments.AttachTransaction(ctx, p.ID, "tx_del_"+uuid.NewString())
		require.NoError(t, err)
		txIDs = append(txIDs, p.TransactionID)
	}

	var wg sync.WaitGroup
	settleErrs := make([]error, len(txIDs))
	for i, txID := range txIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, settleErrs[i] = f.payments.Settle(ctx, txID, domain.OutcomeSuccess)
		}()
	}
	var deleteErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		deleteErr = f.listings.Delete(ctx, l.ID, l.HostID)
	}()
	wg.Wait()

	require.NoError(t, deleteErr)
	for _, err := range settleErrs {
		if err == nil {
			continue
		}
		assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.True(t,
			errors.Is(err, domain.ErrPaymentNotFound) || errors.Is(err, domain.ErrBookingNotFound),
			"unexpected settle error: %v", err)
	}

	_, err := f.listings.GetByID(ctx, l.ID)
	require.ErrorIs(t, err, domain.ErrListingNotFound)
	for _, txID := range txIDs {
		_, err = f.payments.GetByTransactionID(ctx, txID)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	}
}

func TestReviewRepository_CheckConstraint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.listing(t, "75.00")
	guest := f.user(t, domain.RoleGuest)

	_, err := f.reviews.Create(ctx, domain.CreateReviewInput{ListingID: l.ID, UserID: guest.ID, Rating: 9})
	require.ErrorIs(t, err, domain.ErrConstraintViolation)

	_, err = f.reviews.Create(ctx, domain.CreateReviewInput{ListingID: 1 << 40, UserID: guest.ID, Rating: 4})
	require.ErrorIs(t, err, domain.ErrConstraintViolation)

	rv, err := f.reviews.Create(ctx, domain.CreateReviewInput{ListingID: l.ID, UserID: guest.ID, Rating: 4, Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, 4, rv.Rating)
}
