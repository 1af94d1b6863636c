package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits stored for money values.
const MoneyPlaces = 2

type Listing struct {
	ID            int64           `json:"id"`
	HostID        int64           `json:"host_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateListingInput struct {
	ID            int64
	HostID        int64
	Name          string
	Description   string
	Location      string
	PricePerNight decimal.Decimal
}

type UpdateListingInput struct {
	ListingID     int64
	HostID        int64
	Name          *string
	Description   *string
	Location      *string
	PricePerNight *decimal.Decimal
}

// Apply copies the set fields of the input onto l and validates the result.
func (in UpdateListingInput) Apply(l *Listing) error {
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Location != nil {
		l.Location = *in.Location
	}
	if in.PricePerNight != nil {
		l.PricePerNight = *in.PricePerNight
	}
	return l.Validate()
}

func (l *Listing) Validate() error {
	switch {
	case l.ID < 0:
		return fmt.Errorf("%w: id must be positive", ErrValidation)
	case strings.TrimSpace(l.Name) == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case len(l.Name) > 255:
		return fmt.Errorf("%w: name must be at most 255 characters", ErrValidation)
	case strings.TrimSpace(l.Location) == "":
		return fmt.Errorf("%w: location is required", ErrValidation)
	case len(l.Location) > 255:
		return fmt.Errorf("%w: location must be at most 255 characters", ErrValidation)
	}
	return ValidatePrice(l.PricePerNight)
}

// ValidatePrice accepts non-negative amounts with at most two fractional digits.
func ValidatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return fmt.Errorf("%w: price_per_night must not be negative", ErrValidation)
	}
	if !p.Equal(p.Truncate(MoneyPlaces)) {
		return fmt.Errorf("%w: price_per_night must have at most %d fractional digits", ErrValidation, MoneyPlaces)
	}
	return nil
}

// TotalPrice is price_per_night multiplied by the number of nights, exactly.
func TotalPrice(pricePerNight decimal.Decimal, r DateRange) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(r.Nights()))
}
