package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Engineered0/athan-server/internal/geo"
)

// ErrUpstream covers any failed or malformed response from the
// Overpass API.
var ErrUpstream = errors.New("overpass: upstream request failed")

// DefaultBaseURL is the public Overpass API interpreter endpoint.
const DefaultBaseURL = "https://overpass-api.de/api/interpreter"

// Client queries the Overpass geospatial database for mosques.
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
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type element struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

// NearbyMosques returns up to limit muslim places of worship within
// radiusMeters of the given coordinate. Ways and relations carry
// their coordinate in the element's computed center.
func (c *Client) NearbyMosques(ctx context.Context, lat, lon float64, radiusMeters, limit int) ([]geo.Candidate, error) {
	query := fmt.Sprintf(`
		[out:json];
		(
		  node["amenity"="place_of_worship"]["religion"="muslim"](around:%d,%f,%f);
		  way["amenity"="place_of_worship"]["religion"="muslim"](around:%d,%f,%f);
		  relation["amenity"="place_of_worship"]["religion"="muslim"](around:%d,%f,%f);
		);
		out center %d;
	`, radiusMeters, lat, lon, radiusMeters, lat, lon, radiusMeters, lat, lon, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var payload struct {
		Elements []element `json:"elements"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: elements is not a sequence: %v", ErrUpstream, err)
	}

	candidates := make([]geo.Candidate, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		p := geo.Point{Lat: el.Lat, Lon: el.Lon}
		if el.Center != nil {
			p = geo.Point{Lat: el.Center.Lat, Lon: el.Center.Lon}
		}
		candidates = append(candidates, geo.Candidate{Point: p, Name: el.Tags["name"]})
	}
	return candidates, nil
}
