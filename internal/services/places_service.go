package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tripwise/internal/infra"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type PlacesServiceInterface interface {
	GetPlacesByDestination(ctx context.Context, destination string) (*response_models.PlacesResponse, error)
	GetPreferencePlaces(ctx context.Context, destination string, preferences []string, experienceType string) (*response_models.PreferencePlacesResponse, error)
}

// categoryTypes maps each catalog category to the upstream place types
// queried for it.
var categoryTypes = map[string][]string{
	"tourist_attractions": {"tourist_attraction"},
	"restaurants":         {"restaurant", "cafe"},
	"lodging":             {"lodging"},
}

const (
	placesCacheTTL    = 15 * time.Minute
	placesCachePrefix = "places:"
)

type PlacesService struct {
	geocode    infra.GeocodeClientInterface
	places     infra.PlacesClientInterface
	rdb        *redis.Client
	embedder   utils.EmbeddingClientInterface
	embeddings repositories.PlaceEmbeddingRepository
	trips      repositories.TripRepository
}

// NewPlacesService wires the catalog fetcher. geocode and places are
// required at call time; rdb, embedder, embeddings and trips are
// optional and disable caching, preference ranking and trip-derived
// defaults when nil.
func NewPlacesService(
	geocode infra.GeocodeClientInterface,
	places infra.PlacesClientInterface,
	rdb *redis.Client,
	embedder utils.EmbeddingClientInterface,
	embeddings repositories.PlaceEmbeddingRepository,
	trips repositories.TripRepository,
) PlacesServiceInterface {
	return &PlacesService{
		geocode:    geocode,
		places:     places,
		rdb:        rdb,
		embedder:   embedder,
		embeddings: embeddings,
		trips:      trips,
	}
}

func (p *PlacesService) GetPlacesByDestination(ctx context.Context, destination string) (*response_models.PlacesResponse, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, utils.ErrDestinationMissing
	}
	if p.geocode == nil || p.places == nil {
		return nil, utils.ErrMissingConfig
	}

	if cached := p.cachedCatalog(ctx, destination); cached != nil {
		return &response_models.PlacesResponse{Destination: destination, Catalog: *cached}, nil
	}

	lat, lng, found, err := p.geocode.Geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode %s: %v", utils.ErrUpstreamError, destination, err)
	}
	if !found {
		return nil, utils.ErrDestinationMissing
	}

	var catalog response_models.PlacesCatalog
	for category, types := range categoryTypes {
		places, err := p.places.SearchNearby(ctx, lat, lng, types, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %s near %s: %v", utils.ErrUpstreamError, category, destination, err)
		}
		switch category {
		case "tourist_attractions":
			catalog.TouristAttractions = places
		case "restaurants":
			catalog.Restaurants = places
		case "lodging":
			catalog.Lodging = places
		}
	}

	p.storeCatalog(ctx, destination, catalog)
	return &response_models.PlacesResponse{Destination: destination, Catalog: catalog}, nil
}

// GetPreferencePlaces pairs the plain catalog with a recommended variant
// ranked against the traveler's interest tags. Ranking uses cached place
// embeddings when an embedding client is configured and degrades to a
// keyword match otherwise.
func (p *PlacesService) GetPreferencePlaces(
	ctx context.Context,
	destination string,
	preferences []string,
	experienceType string,
) (*response_models.PreferencePlacesResponse, error) {

	base, err := p.GetPlacesByDestination(ctx, destination)
	if err != nil {
		return nil, err
	}

	// Callers that pass no tags fall back to the most recently created
	// trip's preferences, mirroring how the planning flow carries them.
	if len(preferences) == 0 && experienceType == "" && p.trips != nil {
		if trip, err := p.trips.GetLatestTrip(ctx); err == nil && trip != nil {
			preferences = trip.TravelPreferences
			experienceType = trip.ExperienceType
		}
	}

	resp := &response_models.PreferencePlacesResponse{
		Destination: base.Destination,
		Reference:   base.Catalog,
	}
	if len(preferences) == 0 && experienceType == "" {
		resp.Recommended = base.Catalog
		return resp, nil
	}

	if p.embedder != nil && p.embeddings != nil {
		if ranked, ok := p.rankByEmbedding(ctx, base.Destination, base.Catalog, preferences, experienceType); ok {
			resp.Recommended = ranked
			return resp, nil
		}
	}
	resp.Recommended = rankByKeywords(base.Catalog, preferences)
	return resp, nil
}

func (p *PlacesService) cachedCatalog(ctx context.Context, destination string) *response_models.PlacesCatalog {
	if p.rdb == nil {
		return nil
	}
	raw, err := p.rdb.Get(ctx, placesCachePrefix+strings.ToLower(destination)).Bytes()
	if err != nil {
		return nil
	}
	var catalog response_models.PlacesCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil
	}
	return &catalog
}

func (p *PlacesService) storeCatalog(ctx context.Context, destination string, catalog response_models.PlacesCatalog) {
	if p.rdb == nil {
		return
	}
	raw, err := json.Marshal(catalog)
	if err != nil {
		return
	}
	if err := p.rdb.Set(ctx, placesCachePrefix+strings.ToLower(destination), raw, placesCacheTTL).Err(); err != nil {
		log.Printf("places cache write failed: %v", err)
	}
}

// rankByEmbedding embeds the catalog (cached per place) and the query
// tags, then reorders each category nearest-first. Any failure reports
// ok=false so the caller can fall back; ranking is best effort and must
// never fail the request.
func (p *PlacesService) rankByEmbedding(
	ctx context.Context,
	destination string,
	catalog response_models.PlacesCatalog,
	preferences []string,
	experienceType string,
) (response_models.PlacesCatalog, bool) {

	for category, places := range map[string][]response_models.Place{
		"tourist_attractions": catalog.TouristAttractions,
		"restaurants":         catalog.Restaurants,
		"lodging":             catalog.Lodging,
	} {
		for _, place := range places {
			text := place.DisplayName + " " + strings.Join(place.Types, " ") + " " + place.Summary
			vec, err := p.embedder.GetEmbedding(ctx, text)
			if err != nil {
				log.Printf("embedding failed for %s: %v", place.Key(), err)
				return response_models.PlacesCatalog{}, false
			}
			err = p.embeddings.UpsertEmbedding(ctx, &db_models.PlaceEmbedding{
				PlaceKey:    place.Key(),
				Destination: destination,
				DisplayName: place.DisplayName,
				Category:    category,
				Embedding:   vec,
			})
			if err != nil {
				log.Printf("embedding upsert failed for %s: %v", place.Key(), err)
				return response_models.PlacesCatalog{}, false
			}
		}
	}

	query := strings.Join(append(append([]string{}, preferences...), experienceType), " ")
	queryVec, err := p.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return response_models.PlacesCatalog{}, false
	}
	ranked, err := p.embeddings.RankByVector(ctx, destination, queryVec, 60)
	if err != nil {
		return response_models.PlacesCatalog{}, false
	}

	order := make(map[string]int, len(ranked))
	for i, e := range ranked {
		order[e.PlaceKey] = i
	}
	return response_models.PlacesCatalog{
		TouristAttractions: reorderByRank(catalog.TouristAttractions, order),
		Restaurants:        reorderByRank(catalog.Restaurants, order),
		Lodging:            reorderByRank(catalog.Lodging, order),
	}, true
}

func reorderByRank(places []response_models.Place, order map[string]int) []response_models.Place {
	out := make([]response_models.Place, len(places))
	copy(out, places)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && rankOf(out[j], order) < rankOf(out[j-1], order); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func rankOf(p response_models.Place, order map[string]int) int {
	if r, ok := order[p.Key()]; ok {
		return r
	}
	return int(^uint(0) >> 1) // unranked places sink to the end
}

// rankByKeywords is the no-embedding fallback: places whose types or
// review summary mention a preference tag float to the front, original
// order preserved within each bucket.
func rankByKeywords(catalog response_models.PlacesCatalog, preferences []string) response_models.PlacesCatalog {
	return response_models.PlacesCatalog{
		TouristAttractions: keywordPartition(catalog.TouristAttractions, preferences),
		Restaurants:        keywordPartition(catalog.Restaurants, preferences),
		Lodging:            keywordPartition(catalog.Lodging, preferences),
	}
}

func keywordPartition(places []response_models.Place, preferences []string) []response_models.Place {
	var hits, rest []response_models.Place
	for _, place := range places {
		haystack := strings.ToLower(place.DisplayName + " " + strings.Join(place.Types, " ") + " " + place.Summary)
		matched := false
		for _, pref := range preferences {
			if pref != "" && strings.Contains(haystack, strings.ToLower(pref)) {
				matched = true
				break
			}
		}
		if matched {
			hits = append(hits, place)
		} else {
			rest = append(rest, place)
		}
	}
	return append(hits, rest...)
}
