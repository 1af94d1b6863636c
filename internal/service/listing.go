package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ListingService struct {
	repo     ports.ListingRepo
	userRepo ports.UserRepo
	logger   logger.Logger
}

func NewListingService(repo ports.ListingRepo, userRepo ports.UserRepo, logger logger.Logger) *ListingService {
	return &ListingService{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *ListingService) Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error) {
	draft := domain.Listing{
		ID:            input.ID,
		HostID:        input.HostID,
		Name:          input.Name,
		Description:   input.Description,
		Location:      input.Location,
		PricePerNight: input.PricePerNight,
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	host, err := s.userRepo.GetByID(ctx, input.HostID)
	if err != nil {
		return nil, fmt.Errorf("check host: %w", err)
	}
	if host.Role != domain.RoleHost {
		return nil, fmt.Errorf("%w: user %d is not a host", domain.ErrForbidden, host.ID)
	}

	listing, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.logger.Info("listing created",
		logger.Int64("listing_id", listing.ID),
		logger.Int64("host_id", listing.HostID),
	)

	return listing, nil
}

func (s *ListingService) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ListingService) List(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.List(ctx)
}

func (s *ListingService) Update(ctx context.Context, input domain.UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	return listing, nil
}

// Delete removes the listing together with its bookings, their payments and
// its reviews. Only the owning host may delete it.
func (s *ListingService) Delete(ctx context.Context, listingID, hostID int64) error {
	if err := s.repo.Delete(ctx, listingID, hostID); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	s.logger.Info("listing deleted",
		logger.Int64("listing_id", listingID),
		logger.Int64("host_id", hostID),
	)
	return nil
}
