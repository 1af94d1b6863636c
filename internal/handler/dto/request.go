package dto

import "github.com/shopspring/decimal"

type CreateUserRequest struct {
	FirstName      string `json:"first_name" binding:"required,max=150"`
	LastName       string `json:"last_name" binding:"required,max=150"`
	Email          string `json:"email" binding:"required,email"`
	Role           string `json:"role" binding:"required,oneof=host guest"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateListingRequest struct {
	ID            int64            `json:"id" binding:"omitempty,gt=0"`
	HostID        int64            `json:"host_id" binding:"required,gt=0"`
	Name          string           `json:"name" binding:"required,max=255"`
	Description   string           `json:"description"`
	Location      string           `json:"location" binding:"required,max=255"`
	PricePerNight *decimal.Decimal `json:"price_per_night" binding:"required"`
}

type UpdateListingRequest struct {
	HostID        int64            `json:"host_id" binding:"required,gt=0"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	PricePerNight *decimal.Decimal `json:"price_per_night"`
}

type CreateReviewRequest struct {
	ID      int64  `json:"id" binding:"omitempty,gt=0"`
	UserID  int64  `json:"user_id" binding:"required,gt=0"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type CreateBookingRequest struct {
	ID        int64  `json:"id" binding:"omitempty,gt=0"`
	ListingID int64  `json:"listing_id" binding:"required,gt=0"`
	UserID    int64  `json:"user_id" binding:"required,gt=0"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type InitiatePaymentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required,gt=0"`
}

type PaymentCallbackRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Outcome       string `json:"outcome" binding:"required"`
}
