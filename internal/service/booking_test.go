package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/metrics"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingDeps struct {
	bookings  *mocks.MockBookingRepo
	listings  *mocks.MockListingRepo
	users     *mocks.MockUserRepo
	notifier  *mocks.MockBookingNotifier
	publisher *mocks.MockEventPublisher
	metrics   *metrics.Metrics
}

func newBookingService(t *testing.T, allowPastStart bool) (*BookingService, *bookingDeps) {
	t.Helper()
	d := &bookingDeps{
		bookings:  mocks.NewMockBookingRepo(t),
		listings:  mocks.NewMockListingRepo(t),
		users:     mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockBookingNotifier(t),
		publisher: mocks.NewMockEventPublisher(t),
		metrics:   metrics.New("staybooker"),
	}
	svc := NewBookingService(d.bookings, d.listings, d.users, d.notifier, d.publisher, d.metrics, newTestLogger(t), allowPastStart)
	svc.now = func() time.Time { return date("2023-09-15").Add(13 * time.Hour) }
	return svc, d
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	svc, d := newBookingService(t, true)

	listing := &domain.Listing{ID: 10, HostID: 1, Name: "Loft", PricePerNight: decimal.RequireFromString("100.00")}
	user := &domain.User{ID: 2, FirstName: "Alice"}
	created := &domain.Booking{
		ID: 5, ListingID: 10, UserID: 2,
		StartDate: date("2023-10-01"), EndDate: date("2023-10-04"),
		TotalPrice: decimal.RequireFromString("300.00"),
		Status:     domain.BookingStatusPending,
	}

	d.listings.EXPECT().GetByID(mock.Anything, int64(10)).Return(listing, nil)
	d.users.EXPECT().GetByID(mock.Anything, int64(2)).Return(user, nil)
	d.bookings.EXPECT().CreateIfAvailable(mock.Anything, domain.CreateBookingInput{
		ListingID: 10, UserID: 2, StartDate: date("2023-10-01"), EndDate: date("2023-10-04"),
	}).Return(created, nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.SubjectBookingCreated, mock.MatchedBy(func(e domain.BookingCreatedEvent) bool {
		return e.BookingID == 5 && e.StartDate == "2023-10-01" && e.TotalPrice.Equal(created.TotalPrice)
	})).Return(nil)

	done := make(chan struct{})
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, listing, created).
		Run(func(context.Context, *domain.User, *domain.Listing, *domain.Booking) { close(done) }).Return()

	booking, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID: 10,
		UserID:    2,
		StartDate: time.Date(2023, 10, 1, 18, 0, 0, 0, time.UTC),
		EndDate:   date("2023-10-04"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "300.00", booking.TotalPrice.StringFixed(2))
	waitFor(t, done)

	expected := `
# HELP staybooker_bookings_created_total Total number of bookings created.
# TYPE staybooker_bookings_created_total counter
staybooker_bookings_created_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(d.metrics.Registry, strings.NewReader(expected), "staybooker_bookings_created_total"))
}

func TestBookingService_CreateBooking_InvalidRange(t *testing.T) {
	svc, _ := newBookingService(t, true)

	for _, r := range [][2]string{{"2023-10-01", "2023-10-01"}, {"2023-10-04", "2023-10-01"}} {
		_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
			ListingID: 10, UserID: 2, StartDate: date(r[0]), EndDate: date(r[1]),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	}
}

func TestBookingService_CreateBooking_PastStartPolicy(t *testing.T) {
	svc, _ := newBookingService(t, false)

	_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID: 10, UserID: 2, StartDate: date("2023-09-14"), EndDate: date("2023-09-16"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidRange)

	// today is not in the past
	svc, d := newBookingService(t, false)
	d.listings.EXPECT().GetByID(mock.Anything, int64(10)).Return(nil, domain.ErrListingNotFound)
	_, err = svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID: 10, UserID: 2, StartDate: date("2023-09-15"), EndDate: date("2023-09-16"),
	})
	require.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestBookingService_CreateBooking_UserNotFound(t *testing.T) {
	svc, d := newBookingService(t, true)

	d.listings.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	d.users.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, domain.ErrUserNotFound)

	_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID: 10, UserID: 404, StartDate: date("2023-10-01"), EndDate: date("2023-10-02"),
	})

	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_CreateBooking_Unavailable(t *testing.T) {
	svc, d := newBookingService(t, true)

	d.listings.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	d.users.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	d.bookings.EXPECT().CreateIfAvailable(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

	_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID: 10, UserID: 3, StartDate: date("2023-10-02"), EndDate: date("2023-10-03"),
	})

	require.ErrorIs(t, err, domain.ErrUnavailable)

	expected := `
# HELP staybooker_booking_conflicts_total Total number of booking requests rejected because the dates were taken.
# TYPE staybooker_booking_conflicts_total counter
staybooker_booking_conflicts_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(d.metrics.Registry, strings.NewReader(expected), "staybooker_booking_conflicts_total"))
}

func TestBookingService_CreateBooking_PublishFailureIsIgnored(t *testing.T) {
	svc, d := newBookingService(t, true)

	created := &domain.Booking{ID: 6, ListingID: 10, UserID: 2, StartDate: date("2023-10-04"), EndDate: date("2023-10-06")}
	d.listings.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	d.users.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	d.bookings.EXPECT().CreateIfAvailable(mock.Anything, mock.Anything).Return(created, nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.SubjectBookingCreated, mock.Anything).Return(errors.New("nats down"))

	done := make(chan struct{})
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything, created).
		Run(func(context.Context, *domain.User, *domain.Listing, *domain.Booking) { close(done) }).Return()

	booking, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		ListingID: 10, UserID: 2, StartDate: date("2023-10-04"), EndDate: date("2023-10-06"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), booking.ID)
	waitFor(t, done)
}

func TestBookingService_TransitionStatus_Success(t *testing.T) {
	svc, d := newBookingService(t, true)

	updated := &domain.Booking{ID: 5, ListingID: 10, UserID: 2, Status: domain.BookingStatusCanceled}
	user := &domain.User{ID: 2}
	listing := &domain.Listing{ID: 10}

	d.bookings.EXPECT().Transition(mock.Anything, int64(5), domain.BookingStatusCanceled).
		Return(updated, domain.BookingStatusConfirmed, nil)
	d.publisher.EXPECT().Publish(mock.Anything, domain.SubjectBookingStatusChanged, domain.BookingStatusChangedEvent{
		BookingID: 5, From: domain.BookingStatusConfirmed, To: domain.BookingStatusCanceled,
	}).Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, int64(2)).Return(user, nil)
	d.listings.EXPECT().GetByID(mock.Anything, int64(10)).Return(listing, nil)

	done := make(chan struct{})
	d.notifier.EXPECT().NotifyBookingStatusChanged(mock.Anything, user, listing, updated).
		Run(func(context.Context, *domain.User, *domain.Listing, *domain.Booking) { close(done) }).Return()

	got, err := svc.TransitionStatus(context.Background(), 5, domain.BookingStatusCanceled)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCanceled, got.Status)
	waitFor(t, done)
}

func TestBookingService_TransitionStatus_Invalid(t *testing.T) {
	svc, d := newBookingService(t, true)

	d.bookings.EXPECT().Transition(mock.Anything, int64(5), domain.BookingStatusPending).
		Return(nil, "", domain.ErrInvalidTransition)

	_, err := svc.TransitionStatus(context.Background(), 5, domain.BookingStatusPending)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.TransitionStatus(context.Background(), 5, domain.BookingStatus("archived"))
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_TransitionStatus_NotFound(t *testing.T) {
	svc, d := newBookingService(t, true)

	d.bookings.EXPECT().Transition(mock.Anything, int64(404), domain.BookingStatusConfirmed).
		Return(nil, "", domain.ErrBookingNotFound)

	_, err := svc.TransitionStatus(context.Background(), 404, domain.BookingStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_ListByListing_UnknownListing(t *testing.T) {
	svc, d := newBookingService(t, true)

	d.listings.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrListingNotFound)

	_, err := svc.ListByListing(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, d := newBookingService(t, true)

	d.users.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	d.bookings.EXPECT().ListByUser(mock.Anything, int64(2)).Return([]*domain.Booking{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.ListByUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
