package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingRepo interface {
	CreateIfAvailable(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error)
	HasOverlap(ctx context.Context, listingID int64, r domain.DateRange) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID int64) ([]*domain.Booking, error)
	Transition(ctx context.Context, bookingID int64, target domain.BookingStatus) (*domain.Booking, domain.BookingStatus, error)
}
