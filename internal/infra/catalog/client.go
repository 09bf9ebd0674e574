package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"

	"vanbook/internal/app/dto"
	"vanbook/internal/domain/availability"
	"vanbook/internal/domain/shared/dateonly"
)

var ErrUnitNotFound = errors.New("catalog: unit not found")

// Client consumes the catalog service's read endpoints. Both feeds are
// treated as black boxes: a unit list and per-unit busy intervals.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

type unitRow struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	PricePerNight float64  `json:"pricePerNight"`
	Photos        []string `json:"photos"`
	Equipment     []string `json:"equipment"`
	Description   string   `json:"description"`
}

type availabilityResponse struct {
	Busy []struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"busy"`
}

// Unit fetches the catalog and picks the requested entry. The upstream rate
// is a euro float; it is converted to cents at this boundary once.
func (c *Client) Unit(ctx context.Context, unitID string) (dto.Unit, error) {
	var rows []unitRow
	if err := c.getJSON(ctx, c.BaseURL+"/api/vans", &rows); err != nil {
		return dto.Unit{}, err
	}
	for _, row := range rows {
		if row.Slug == unitID {
			return dto.Unit{
				ID:               row.Slug,
				Name:             row.Name,
				NightlyRateCents: int64(math.Round(row.PricePerNight * 100)),
				Photos:           row.Photos,
				Equipment:        row.Equipment,
				Description:      row.Description,
			}, nil
		}
	}
	return dto.Unit{}, fmt.Errorf("%w: %q", ErrUnitNotFound, unitID)
}

// Availability fetches the busy intervals for one unit. Rows with dates that
// do not parse are dropped with a warning; one broken row must not block the
// calendar.
func (c *Client) Availability(ctx context.Context, unitID string) (*availability.Set, error) {
	endpoint := c.BaseURL + "/api/availability?slug=" + url.QueryEscape(unitID)
	var resp availabilityResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	intervals := make([]availability.Interval, 0, len(resp.Busy))
	for _, row := range resp.Busy {
		start, err := dateonly.Parse(row.Start)
		if err != nil {
			c.logWarn("availability row skipped", "unit_id", unitID, "error", err)
			continue
		}
		end, err := dateonly.Parse(row.End)
		if err != nil {
			c.logWarn("availability row skipped", "unit_id", unitID, "error", err)
			continue
		}
		intervals = append(intervals, availability.Interval{Start: start, End: end})
	}
	return availability.NewSet(intervals), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("catalog: %s returned status %d", strings.TrimPrefix(endpoint, c.BaseURL), resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog: decode response: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) logWarn(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Warn(msg, args...)
	}
}
