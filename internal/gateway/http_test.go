package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Charge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/charges", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "local-abc", body["reference"])
		assert.Equal(t, float64(7), body["booking_id"])
		assert.Equal(t, "300.00", body["amount"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"transaction_id":"tx_1","status":"pending"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/v1/", "secret", time.Second)
	res, err := c.Charge(context.Background(), domain.ChargeRequest{
		Reference: "local-abc",
		BookingID: 7,
		Amount:    decimal.RequireFromString("300.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "tx_1", res.TransactionID)
	assert.Equal(t, domain.PaymentStatusPending, res.Status)
}

func TestHTTPClient_Charge_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "declined upstream", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", time.Second)
	_, err := c.Charge(context.Background(), domain.ChargeRequest{BookingID: 1, Amount: decimal.NewFromInt(1)})

	require.ErrorIs(t, err, ErrUnexpectedResponse)
	assert.NotErrorIs(t, err, domain.ErrChargeRejected)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPClient_Charge_RejectionClassification(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		rejected bool
	}{
		{name: "payment required", code: http.StatusPaymentRequired, rejected: true},
		{name: "bad request", code: http.StatusBadRequest, rejected: true},
		{name: "unprocessable", code: http.StatusUnprocessableEntity, rejected: true},
		{name: "request timeout", code: http.StatusRequestTimeout, rejected: false},
		{name: "throttled", code: http.StatusTooManyRequests, rejected: false},
		{name: "server error", code: http.StatusInternalServerError, rejected: false},
		{name: "unavailable", code: http.StatusServiceUnavailable, rejected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.code)
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, "", time.Second)
			_, err := c.Charge(context.Background(), domain.ChargeRequest{BookingID: 1, Amount: decimal.NewFromInt(1)})

			require.Error(t, err)
			assert.Equal(t, tt.rejected, errors.Is(err, domain.ErrChargeRejected))

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.code, se.Code)
		})
	}
}

func TestHTTPClient_Charge_TransportErrorIsNotRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, "", time.Second).Charge(context.Background(), domain.ChargeRequest{BookingID: 1})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrChargeRejected)
}

func TestHTTPClient_Charge_EmptyTransactionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"pending"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", time.Second)
	_, err := c.Charge(context.Background(), domain.ChargeRequest{BookingID: 1})

	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestHTTPClient_Status(t *testing.T) {
	tests := []struct {
		provider string
		want     domain.PaymentStatus
	}{
		{"completed", domain.PaymentStatusCompleted},
		{"success", domain.PaymentStatusCompleted},
		{"failed", domain.PaymentStatusFailed},
		{"pending", domain.PaymentStatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/charges/tx_9", r.URL.Path)
				_ = json.NewEncoder(w).Encode(map[string]string{"transaction_id": "tx_9", "status": tt.provider})
			}))
			defer srv.Close()

			got, err := NewHTTPClient(srv.URL, "", time.Second).Status(context.Background(), "tx_9")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPClient_Status_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"transaction_id":"tx_9","status":"refunded"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, "", time.Second).Status(context.Background(), "tx_9")
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"transaction_id":"tx_1","status":"pending"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, "", 20*time.Millisecond).Status(context.Background(), "tx_1")
	require.Error(t, err)
}

func TestSandbox(t *testing.T) {
	s := NewSandbox()
	ctx := context.Background()

	res, err := s.Charge(ctx, domain.ChargeRequest{BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, res.Status)
	assert.NotEmpty(t, res.TransactionID)

	st, err := s.Status(ctx, res.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, st)

	other, err := s.Charge(ctx, domain.ChargeRequest{BookingID: 1})
	require.NoError(t, err)
	assert.NotEqual(t, res.TransactionID, other.TransactionID)
}
