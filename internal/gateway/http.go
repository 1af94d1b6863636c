package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

var ErrUnexpectedResponse = errors.New("unexpected gateway response")

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrUnexpectedResponse, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedResponse }

// rejected reports whether the provider refused the request outright.
// Timeouts and throttling say nothing about whether a charge was made.
func (e *StatusError) rejected() bool {
	if e.Code == http.StatusRequestTimeout || e.Code == http.StatusTooManyRequests {
		return false
	}
	return e.Code >= 400 && e.Code < 500
}

// HTTPClient talks to the payment provider's REST API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type chargeRequest struct {
	Reference string `json:"reference"`
	BookingID int64  `json:"booking_id"`
	Amount    string `json:"amount"`
}

type chargeResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

func (c *HTTPClient) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	payload, err := json.Marshal(chargeRequest{
		Reference: req.Reference,
		BookingID: req.BookingID,
		Amount:    req.Amount.StringFixed(domain.MoneyPlaces),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal charge request: %w", err)
	}

	var resp chargeResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/charges", payload, &resp); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.rejected() {
			return nil, fmt.Errorf("charge: %w: %w", domain.ErrChargeRejected, err)
		}
		return nil, fmt.Errorf("charge: %w", err)
	}
	if resp.TransactionID == "" {
		return nil, fmt.Errorf("charge: %w: empty transaction_id", ErrUnexpectedResponse)
	}

	status, err := parseStatus(resp.Status)
	if err != nil {
		return nil, fmt.Errorf("charge: %w", err)
	}

	return &domain.ChargeResult{TransactionID: resp.TransactionID, Status: status}, nil
}

func (c *HTTPClient) Status(ctx context.Context, transactionID string) (domain.PaymentStatus, error) {
	var resp chargeResponse
	endpoint := c.baseURL + "/charges/" + url.PathEscape(transactionID)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return "", fmt.Errorf("status %s: %w", transactionID, err)
	}

	status, err := parseStatus(resp.Status)
	if err != nil {
		return "", fmt.Errorf("status %s: %w", transactionID, err)
	}
	return status, nil
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseStatus maps provider status spellings onto payment statuses.
func parseStatus(s string) (domain.PaymentStatus, error) {
	o, err := domain.ParseOutcome(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return o.Status(), nil
}
