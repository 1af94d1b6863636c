package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

type ReviewService struct {
	repo        ports.ReviewRepo
	listingRepo ports.ListingRepo
	userRepo    ports.UserRepo
}

func NewReviewService(repo ports.ReviewRepo, listingRepo ports.ListingRepo, userRepo ports.UserRepo) *ReviewService {
	return &ReviewService{repo: repo, listingRepo: listingRepo, userRepo: userRepo}
}

func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	input.Comment = strings.TrimSpace(input.Comment)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	review, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ListByListing(ctx context.Context, listingID int64) ([]*domain.Review, error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}
	return s.repo.ListByListing(ctx, listingID)
}
