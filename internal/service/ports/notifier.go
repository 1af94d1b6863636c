package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingStatusChanged(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyPaymentSettled(ctx context.Context, user *domain.User, booking *domain.Booking, payment *domain.Payment)
}

type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}
