package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"vanbook/internal/app/dto"
)

// Client posts booking requests to the backend. A returned error means the
// backend was unreachable or answered garbage (transport failure); a decoded
// response with ok=false is an application failure and comes back without an
// error.
type Client struct {
	Endpoint string
	HTTP     *http.Client
	Logger   *slog.Logger
}

func (c *Client) Submit(ctx context.Context, payload dto.BookingPayload) (dto.BookingResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return dto.BookingResult{}, fmt.Errorf("bookingapi: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return dto.BookingResult{}, fmt.Errorf("bookingapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return dto.BookingResult{}, fmt.Errorf("bookingapi: %w", err)
	}
	defer resp.Body.Close()

	var result dto.BookingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return dto.BookingResult{}, fmt.Errorf("bookingapi: status %d: %s", resp.StatusCode, snippet)
		}
		return dto.BookingResult{}, fmt.Errorf("bookingapi: decode response: %w", err)
	}
	if c.Logger != nil && !result.OK {
		c.Logger.Warn("booking backend declined request", "unit_id", payload.Slug, "reason", result.Error)
	}
	return result, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
