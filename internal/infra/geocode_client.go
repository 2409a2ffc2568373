package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// GeocodeClientInterface resolves free-text place names to coordinates.
// Lookups are best effort: a miss is (found=false, nil error).
type GeocodeClientInterface interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, found bool, err error)
}

// GeocodeClient calls the Google geocoding API. Every call is a single
// attempt; there is no retry policy anywhere in this service, failures
// surface immediately.
type GeocodeClient struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewGeocodeClient(base, key string, rps int) *GeocodeClient {
	if base == "" {
		base = "https://maps.googleapis.com/maps/api/geocode/json"
	}
	if rps <= 0 {
		rps = 5
	}
	return &GeocodeClient{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GeocodeClient) Geocode(ctx context.Context, address string) (float64, float64, bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return 0, 0, false, err
	}

	u := fmt.Sprintf("%s?address=%s&key=%s", c.base, url.QueryEscape(address), c.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, false, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, 0, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, false, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var out geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, 0, false, fmt.Errorf("geocode: decode: %w", err)
	}
	if out.Status != "OK" || len(out.Results) == 0 {
		return 0, 0, false, nil
	}
	loc := out.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, true, nil
}
