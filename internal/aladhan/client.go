package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Engineered0/athan-server/internal/model"
)

// ErrUpstream covers any failed or malformed response from the
// Aladhan API.
var ErrUpstream = errors.New("aladhan: upstream request failed")

// DefaultBaseURL is the public Aladhan API.
const DefaultBaseURL = "https://api.aladhan.com"

// Method is an Aladhan prayer-time calculation method code.
type Method int

// MethodISNA (Islamic Society of North America) is the only method
// this service supports.
const MethodISNA Method = 2

// Valid reports whether the method is one this service supports.
func (m Method) Valid() bool {
	return m == MethodISNA
}

// Client fetches daily prayer timings from the Aladhan API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Timings returns the five prayer times for the given city, country
// and date. Time strings are returned exactly as the API sends them;
// suffix stripping happens during schedule parsing.
func (c *Client) Timings(ctx context.Context, city, country string, date time.Time, method Method) (model.PrayerTimes, error) {
	q := url.Values{}
	q.Set("city", city)
	q.Set("country", country)
	q.Set("method", fmt.Sprintf("%d", method))

	endpoint := fmt.Sprintf("%s/v1/timingsByCity/%s?%s",
		c.baseURL, date.Format("2006-01-02"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.PrayerTimes{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.PrayerTimes{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.PrayerTimes{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Timings model.PrayerTimes `json:"timings"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.PrayerTimes{}, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}

	t := payload.Data.Timings
	if t.Fajr == "" || t.Dhuhr == "" || t.Asr == "" || t.Maghrib == "" || t.Isha == "" {
		return model.PrayerTimes{}, fmt.Errorf("%w: incomplete timings", ErrUpstream)
	}
	return t, nil
}
