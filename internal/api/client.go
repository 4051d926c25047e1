// Package api is the HTTP client for the booking backend. Wire formats are
// owned by the backend; this package only knows the envelope shape and the
// four operations the booking workflows consume.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"github.com/arenaku/courtbook/internal/domain"
	"github.com/arenaku/courtbook/pkg/logger"
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// dataEnvelope is the backend's standard response wrapper.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// CreateBooking submits a booking request. Every call carries a fresh
// idempotency key: the workflow never retries on its own, so each submission
// the caller decides to make is a distinct attempt.
func (c *Client) CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error) {
	var env dataEnvelope[domain.Booking]
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	if err := c.do(ctx, http.MethodPost, "/v1/bookings", req, headers, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// RequestPaymentRedirect asks the backend for a payment-provider redirect
// URL scoped to bookingID. An empty URL is a valid, non-error response.
func (c *Client) RequestPaymentRedirect(ctx context.Context, bookingID int64) (string, error) {
	var env dataEnvelope[struct {
		RedirectURL string `json:"redirectUrl"`
	}]
	path := fmt.Sprintf("/v1/payments/booking/%d", bookingID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &env); err != nil {
		return "", err
	}
	return env.Data.RedirectURL, nil
}

func (c *Client) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	var env dataEnvelope[domain.Booking]
	path := fmt.Sprintf("/v1/bookings/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ListOptions filters the bookings list. The zero value lists with the
// backend's defaults.
type ListOptions struct {
	Limit  int    `url:"limit,omitempty"`
	Offset int    `url:"offset,omitempty"`
	Status string `url:"status,omitempty"`
}

func (c *Client) ListBookings(ctx context.Context, opts ListOptions) ([]domain.Booking, error) {
	vals, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encode list options: %w", err)
	}

	path := "/v1/bookings"
	if encoded := vals.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var env dataEnvelope[[]domain.Booking]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("resolve access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.DebugContext(ctx, "api request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
