package domain

import (
	"fmt"
	"time"
)

type Review struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	ID        int64
	ListingID int64
	UserID    int64
	Rating    int
	Comment   string
}

func (in CreateReviewInput) Validate() error {
	if in.Rating < 1 || in.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if in.ID < 0 {
		return fmt.Errorf("%w: id must be positive", ErrValidation)
	}
	return nil
}
