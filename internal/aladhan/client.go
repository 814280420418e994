package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Nixie-Tech-LLC/namaz/internal/hijri"
	"github.com/Nixie-Tech-LLC/namaz/internal/prayer"
)

const DefaultBaseURL = "https://api.aladhan.com/v1"

// Day is one date's raw upstream data: start times and the Hijri date with
// the month name as reported (not yet normalized).
type Day struct {
	Timings prayer.Timings `json:"timings"`
	Hijri   hijri.Date     `json:"hijri"`
}

// Location fixes the coordinates and calculation settings sent upstream.
type Location struct {
	Latitude  float64
	Longitude float64
	Method    int // 2 = Islamic Society of North America
	School    int // 0 = Shafi, 1 = Hanafi
}

// Client fetches daily timings from the Al Adhan API for one location.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported so tests can point it at httptest.
	BaseURL  string
	location Location
}

func NewClient(baseURL string, loc Location, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		location:   loc,
	}
}

// Fetch returns the timings and Hijri date for date. Any transport, status
// or payload problem is returned as an error.
func (c *Client) Fetch(ctx context.Context, date time.Time) (*Day, error) {
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, date.Format("02-01-2006"))

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", c.location.Latitude))
	params.Set("longitude", fmt.Sprintf("%f", c.location.Longitude))
	params.Set("method", strconv.Itoa(c.location.Method))
	params.Set("school", strconv.Itoa(c.location.School))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode API response: %w", err)
	}
	if apiResp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", apiResp.Code, apiResp.Status)
	}

	return toDay(apiResp.Data)
}

func toDay(data Data) (*Day, error) {
	timings := prayer.Timings{
		prayer.Fajr:    stripZone(data.Timings.Fajr),
		prayer.Dhuhr:   stripZone(data.Timings.Dhuhr),
		prayer.Asr:     stripZone(data.Timings.Asr),
		prayer.Maghrib: stripZone(data.Timings.Maghrib),
		prayer.Isha:    stripZone(data.Timings.Isha),
	}
	if err := timings.Validate(); err != nil {
		return nil, fmt.Errorf("bad timings in API response: %w", err)
	}

	h := data.Date.Hijri
	day, err := strconv.Atoi(strings.TrimSpace(h.Day))
	if err != nil {
		return nil, fmt.Errorf("bad hijri day %q: %w", h.Day, err)
	}
	year, err := strconv.Atoi(strings.TrimSpace(h.Year))
	if err != nil {
		return nil, fmt.Errorf("bad hijri year %q: %w", h.Year, err)
	}

	return &Day{
		Timings: timings,
		Hijri:   hijri.Date{Day: day, Month: h.Month.En, Year: year},
	}, nil
}

// stripZone drops a trailing zone label such as " (IST)".
func stripZone(raw string) string {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, " "); idx != -1 {
		s = s[:idx]
	}
	return s
}
