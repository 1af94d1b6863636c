package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler"
	hmocks "github.com/stpnv0/StayBooker/internal/handler/mocks"
	"github.com/stpnv0/StayBooker/internal/metrics"
	"github.com/stpnv0/StayBooker/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newHandler(t *testing.T) (*hmocks.MockBookingSvc, *handler.Handler) {
	bookings := hmocks.NewMockBookingSvc(t)
	h := handler.NewHandler(
		hmocks.NewMockUserSvc(t),
		hmocks.NewMockListingSvc(t),
		hmocks.NewMockReviewSvc(t),
		hmocks.NewMockAvailabilitySvc(t),
		bookings,
		hmocks.NewMockPaymentSvc(t),
	)
	return bookings, h
}

func TestInitRouter_Health(t *testing.T) {
	_, h := newHandler(t)
	r := router.InitRouter("test", h, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestInitRouter_Metrics(t *testing.T) {
	_, h := newHandler(t)
	m := metrics.New("staybooker")
	m.BookingCreated()

	r := router.InitRouter("test", h, m.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staybooker_bookings_created_total 1")
}

func TestInitRouter_MetricsDisabled(t *testing.T) {
	_, h := newHandler(t)
	r := router.InitRouter("test", h, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInitRouter_RoutesToHandler(t *testing.T) {
	bookings, h := newHandler(t)
	bookings.EXPECT().GetBooking(mock.Anything, int64(3)).Return(nil, domain.ErrBookingNotFound)

	r := router.InitRouter("test", h, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/3", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
