package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"tripwise/internal/infra"
	"tripwise/internal/models/response_models"
)

type GeocodeServiceInterface interface {
	Resolve(ctx context.Context, query string) response_models.Coordinates
	ResolveDebounced(query string, deliver func(response_models.Coordinates))
}

const (
	geocodeDebounce = 600 * time.Millisecond
	geocodeTimeout  = 10 * time.Second
)

// GeocodeService resolves destination text to map coordinates. Lookups
// are best effort: a miss or failure yields Found=false, never an error,
// so the caller can always render without a marker.
type GeocodeService struct {
	client infra.GeocodeClientInterface

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func NewGeocodeService(client infra.GeocodeClientInterface) GeocodeServiceInterface {
	return &GeocodeService{client: client}
}

func (s *GeocodeService) Resolve(ctx context.Context, query string) response_models.Coordinates {
	query = strings.TrimSpace(query)
	if query == "" || s.client == nil {
		return response_models.Coordinates{Label: query}
	}

	lat, lng, found, err := s.client.Geocode(ctx, query)
	if err != nil {
		log.Printf("geocode %q failed: %v", query, err)
		return response_models.Coordinates{Label: query}
	}
	return response_models.Coordinates{Lat: lat, Lng: lng, Label: query, Found: found}
}

// ResolveDebounced coalesces rapid queries: only the one standing after
// the quiet period is looked up. Each call bumps a generation counter
// and a completed lookup delivers only if its generation is still
// current, so a slow earlier response can never overwrite a newer one.
func (s *GeocodeService) ResolveDebounced(query string, deliver func(response_models.Coordinates)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	myGen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(geocodeDebounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), geocodeTimeout)
		defer cancel()
		coords := s.Resolve(ctx, query)

		s.mu.Lock()
		stale := s.gen != myGen
		s.mu.Unlock()
		if !stale {
			deliver(coords)
		}
	})
}
