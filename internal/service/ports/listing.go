package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, in domain.CreateListingInput) (*domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	Update(ctx context.Context, in domain.UpdateListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, listingID, hostID int64) error
}

type ReviewRepo interface {
	Create(ctx context.Context, in domain.CreateReviewInput) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID int64) ([]*domain.Review, error)
}
