package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// retryAfterSeconds is sent with 503 responses when the store is busy.
const retryAfterSeconds = "1"

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type ListingSvc interface {
	Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	Update(ctx context.Context, input domain.UpdateListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, listingID, hostID int64) error
}

type ReviewSvc interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID int64) ([]*domain.Review, error)
}

type AvailabilitySvc interface {
	IsAvailable(ctx context.Context, listingID int64, start, end time.Time) (bool, error)
}

type BookingSvc interface {
	CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID int64) ([]*domain.Booking, error)
}

type PaymentSvc interface {
	InitiatePayment(ctx context.Context, bookingID int64) (*domain.Payment, error)
	Reconcile(ctx context.Context, transactionID string, outcome domain.Outcome) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error)
}

type Handler struct {
	userService         UserSvc
	listingService      ListingSvc
	reviewService       ReviewSvc
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
	paymentService      PaymentSvc
}

func NewHandler(
	userService UserSvc,
	listingService ListingSvc,
	reviewService ReviewSvc,
	availabilityService AvailabilitySvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
) *Handler {
	return &Handler{
		userService:         userService,
		listingService:      listingService,
		reviewService:       reviewService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
		paymentService:      paymentService,
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// Listings

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateListingInput{
		ID:            req.ID,
		HostID:        req.HostID,
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: *req.PricePerNight,
	}

	listing, err := h.listingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id, ok := parseID(c, "id", "listing")
	if !ok {
		return
	}

	listing, err := h.listingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) ListListings(c *ginext.Context) {
	listings, err := h.listingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateListing(c *ginext.Context) {
	id, ok := parseID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateListingInput{
		ListingID:     id,
		HostID:        req.HostID,
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	}

	listing, err := h.listingService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

// DeleteListing expects the owner in the host_id query parameter.
func (h *Handler) DeleteListing(c *ginext.Context) {
	id, ok := parseID(c, "id", "listing")
	if !ok {
		return
	}

	hostID, err := strconv.ParseInt(c.Query("host_id"), 10, 64)
	if err != nil || hostID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid host_id"})
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), id, hostID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	id, ok := parseID(c, "id", "listing")
	if !ok {
		return
	}

	start, err := time.Parse(domain.DateLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(domain.DateLayout, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "end_date must be YYYY-MM-DD"})
		return
	}

	available, err := h.availabilityService.IsAvailable(c.Request.Context(), id, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		ListingID: id,
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
		Available: available,
	})
}

func (h *Handler) GetListingBookings(c *ginext.Context) {
	id, ok := parseID(c, "id", "listing")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByListing(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// Reviews

func (h *Handler) CreateReview(c *ginext.Context) {
	listingID, ok := parseID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReviewInput{
		ID:        req.ID,
		ListingID: listingID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	review, err := h.reviewService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) ListReviews(c *ginext.Context) {
	listingID, ok := parseID(c, "id", "listing")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func parseID(c *ginext.Context, param, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + entity + " id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnavailable),
		errors.Is(err, domain.ErrConstraintViolation),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyInitiated),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.Header("Retry-After", retryAfterSeconds)
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "service temporarily unavailable, retry later"})

	case errors.Is(err, domain.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
