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

type BookingService struct {
	bookingRepo    ports.BookingRepo
	listingRepo    ports.ListingRepo
	userRepo       ports.UserRepo
	notifier       ports.BookingNotifier
	publisher      ports.EventPublisher
	metrics        *metrics.Metrics
	logger         logger.Logger
	allowPastStart bool
	now            func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	logger logger.Logger,
	allowPastStart bool,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		listingRepo:    listingRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		publisher:      publisher,
		metrics:        m,
		logger:         logger,
		allowPastStart: allowPastStart,
		now:            time.Now,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	r, err := domain.NewDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if err = checkStart(r, s.allowPastStart, s.now()); err != nil {
		return nil, err
	}
	if in.ID < 0 {
		return nil, fmt.Errorf("%w: id must be positive", domain.ErrValidation)
	}

	listing, err := s.listingRepo.GetByID(ctx, in.ListingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	in.StartDate, in.EndDate = r.Start, r.End
	booking, err := s.bookingRepo.CreateIfAvailable(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			s.metrics.BookingConflict()
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.metrics.BookingCreated()
	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("listing_id", booking.ListingID),
		logger.Int64("user_id", booking.UserID),
		logger.String("range", r.String()),
		logger.String("total_price", booking.TotalPrice.StringFixed(domain.MoneyPlaces)),
	)

	publish(ctx, s.publisher, s.logger, domain.SubjectBookingCreated, domain.BookingCreatedEvent{
		BookingID:  booking.ID,
		ListingID:  booking.ListingID,
		UserID:     booking.UserID,
		StartDate:  booking.StartDate.Format(domain.DateLayout),
		EndDate:    booking.EndDate.Format(domain.DateLayout),
		TotalPrice: booking.TotalPrice,
		OccurredAt: booking.CreatedAt,
	})

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, listing, booking)

	return booking, nil
}

// TransitionStatus moves a booking along the status table. Canceling a
// confirmed booking leaves its payments as they are.
func (s *BookingService) TransitionStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, status)
	}

	booking, prev, err := s.bookingRepo.Transition(ctx, bookingID, status)
	if err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	s.metrics.BookingTransitioned(string(booking.Status))
	s.logger.Info("booking status changed",
		logger.Int64("booking_id", booking.ID),
		logger.String("from", string(prev)),
		logger.String("to", string(booking.Status)),
	)

	publish(ctx, s.publisher, s.logger, domain.SubjectBookingStatusChanged, domain.BookingStatusChangedEvent{
		BookingID:  booking.ID,
		From:       prev,
		To:         booking.Status,
		OccurredAt: booking.UpdatedAt,
	})

	go s.notifyStatusChanged(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) notifyStatusChanged(ctx context.Context, b *domain.Booking) {
	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		s.logger.Error("failed to get user for status notification",
			logger.Int64("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
	if err != nil {
		s.logger.Error("failed to get listing for status notification",
			logger.Int64("listing_id", b.ListingID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingStatusChanged(ctx, user, listing, b)
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListByListing(ctx context.Context, listingID int64) ([]*domain.Booking, error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}
	return s.bookingRepo.ListByListing(ctx, listingID)
}

// publish sends a domain event after a commit. Delivery is best effort.
func publish(ctx context.Context, p ports.EventPublisher, log logger.Logger, subject string, payload any) {
	if err := p.Publish(context.WithoutCancel(ctx), subject, payload); err != nil {
		log.Warn("failed to publish event",
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}
