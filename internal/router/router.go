package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)

	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	UpdateListing(c *ginext.Context)
	DeleteListing(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetListingBookings(c *ginext.Context)
	CreateReview(c *ginext.Context)
	ListReviews(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	TransitionBooking(c *ginext.Context)
	GetBookingPayments(c *ginext.Context)

	InitiatePayment(c *ginext.Context)
	PaymentCallback(c *ginext.Context)
	GetPayment(c *ginext.Context)
}

// InitRouter registers the API under /api. metrics may be nil, in which
// case /metrics is not served.
func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Listings
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.PUT("/listings/:id", h.UpdateListing)
		api.DELETE("/listings/:id", h.DeleteListing)
		api.GET("/listings/:id/availability", h.GetAvailability)
		api.GET("/listings/:id/bookings", h.GetListingBookings)
		api.POST("/listings/:id/reviews", h.CreateReview)
		api.GET("/listings/:id/reviews", h.ListReviews)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id/status", h.TransitionBooking)
		api.GET("/bookings/:id/payments", h.GetBookingPayments)

		// Payments
		api.POST("/payments/initiate", h.InitiatePayment)
		api.POST("/payments/callback", h.PaymentCallback)
		api.GET("/payments/:id", h.GetPayment)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
