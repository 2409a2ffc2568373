package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"tripwise/internal/models/response_models"
)

// PlacesClientInterface fetches nearby points of interest for a
// coordinate, filtered to one category's place types.
type PlacesClientInterface interface {
	SearchNearby(ctx context.Context, lat, lng float64, includedTypes []string, radius float64) ([]response_models.Place, error)
}

// PlacesClient calls the Google Places nearby-search API (v1). Single
// attempt per call, rate limited client-side.
type PlacesClient struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewPlacesClient(base, key string, rps int) *PlacesClient {
	if base == "" {
		base = "https://places.googleapis.com/v1/places:searchNearby"
	}
	if rps <= 0 {
		rps = 5
	}
	return &PlacesClient{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 15 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

const placesFieldMask = "places.displayName,places.id,places.internationalPhoneNumber," +
	"places.formattedAddress,places.types,places.rating,places.userRatingCount," +
	"places.googleMapsUri,places.photos,places.reviewSummary.text.text"

type nearbyRequest struct {
	IncludedTypes       []string `json:"includedTypes"`
	MaxResultCount      int      `json:"maxResultCount"`
	LocationRestriction struct {
		Circle struct {
			Center struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"center"`
			Radius float64 `json:"radius"`
		} `json:"circle"`
	} `json:"locationRestriction"`
}

type nearbyResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress         string   `json:"formattedAddress"`
		Types                    []string `json:"types"`
		Rating                   float64  `json:"rating"`
		UserRatingCount          int      `json:"userRatingCount"`
		InternationalPhoneNumber string   `json:"internationalPhoneNumber"`
		GoogleMapsURI            string   `json:"googleMapsUri"`
		Photos                   []struct {
			Name string `json:"name"`
		} `json:"photos"`
		ReviewSummary struct {
			Text struct {
				Text string `json:"text"`
			} `json:"text"`
		} `json:"reviewSummary"`
	} `json:"places"`
}

func (c *PlacesClient) SearchNearby(
	ctx context.Context,
	lat, lng float64,
	includedTypes []string,
	radius float64,
) ([]response_models.Place, error) {

	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	if radius <= 0 {
		radius = 1500
	}

	var body nearbyRequest
	body.IncludedTypes = includedTypes
	body.MaxResultCount = 20
	body.LocationRestriction.Circle.Center.Latitude = lat
	body.LocationRestriction.Circle.Center.Longitude = lng
	body.LocationRestriction.Circle.Radius = radius

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.key)
	req.Header.Set("X-Goog-FieldMask", placesFieldMask)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: unexpected status %d", resp.StatusCode)
	}

	var out nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("places: decode: %w", err)
	}

	places := make([]response_models.Place, 0, len(out.Places))
	for _, p := range out.Places {
		place := response_models.Place{
			ID:          p.ID,
			DisplayName: p.DisplayName.Text,
			Address:     p.FormattedAddress,
			Types:       p.Types,
			Rating:      p.Rating,
			RatingCount: p.UserRatingCount,
			Phone:       p.InternationalPhoneNumber,
			PlaceURI:    p.GoogleMapsURI,
			Summary:     p.ReviewSummary.Text.Text,
		}
		for _, ph := range p.Photos {
			place.Photos = append(place.Photos, ph.Name)
		}
		places = append(places, place)
	}
	return places, nil
}
