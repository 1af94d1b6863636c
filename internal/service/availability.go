package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

type AvailabilityService struct {
	listingRepo    ports.ListingRepo
	bookingRepo    ports.BookingRepo
	allowPastStart bool
	now            func() time.Time
}

func NewAvailabilityService(
	listingRepo ports.ListingRepo,
	bookingRepo ports.BookingRepo,
	allowPastStart bool,
) *AvailabilityService {
	return &AvailabilityService{
		listingRepo:    listingRepo,
		bookingRepo:    bookingRepo,
		allowPastStart: allowPastStart,
		now:            time.Now,
	}
}

// IsAvailable reports whether no active booking of the listing overlaps
// [start, end). The answer is advisory: CreateBooking repeats the check
// under the listing lock.
func (s *AvailabilityService) IsAvailable(ctx context.Context, listingID int64, start, end time.Time) (bool, error) {
	r, err := domain.NewDateRange(start, end)
	if err != nil {
		return false, err
	}
	if err = checkStart(r, s.allowPastStart, s.now()); err != nil {
		return false, err
	}

	if _, err = s.listingRepo.GetByID(ctx, listingID); err != nil {
		return false, fmt.Errorf("check listing: %w", err)
	}

	overlap, err := s.bookingRepo.HasOverlap(ctx, listingID, r)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return !overlap, nil
}

func checkStart(r domain.DateRange, allowPast bool, now time.Time) error {
	if allowPast || !r.StartsBefore(now.UTC()) {
		return nil
	}
	return fmt.Errorf("%w: start_date %s is in the past", domain.ErrInvalidRange, r.Start.Format(domain.DateLayout))
}
