package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/planner"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
	GenerateForTrip(ctx context.Context, tripID, mode string, placeKeys []string) (*response_models.GenerateItineraryResponse, error)
}

type ItineraryService struct {
	client   utils.ItineraryClientInterface
	places   PlacesServiceInterface
	tripRepo repositories.TripRepository
}

func NewItineraryService(
	client utils.ItineraryClientInterface,
	places PlacesServiceInterface,
	tripRepo repositories.TripRepository,
) ItineraryServiceInterface {
	return &ItineraryService{client: client, places: places, tripRepo: tripRepo}
}

// Generate assembles and validates the generation payload first: a
// custom request with no selected places fails before any upstream call
// is made.
func (s *ItineraryService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	summary := planner.TripSummary{
		Destination: req.Destination,
		Days:        req.Days,
		Preferences: req.Preferences,
	}
	return s.generate(ctx, summary, planner.Mode(req.Mode), req.Places)
}

// GenerateForTrip generates from a previously saved trip instead of an
// inline payload.
func (s *ItineraryService) GenerateForTrip(ctx context.Context, tripID, mode string, placeKeys []string) (*response_models.GenerateItineraryResponse, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	summary := planner.TripSummary{
		Destination: trip.ToLocation,
		Days:        trip.DurationDays,
		Preferences: trip.TravelPreferences,
	}
	return s.generate(ctx, summary, planner.Mode(mode), placeKeys)
}

func (s *ItineraryService) generate(ctx context.Context, summary planner.TripSummary, mode planner.Mode, placeKeys []string) (*response_models.GenerateItineraryResponse, error) {
	sel := planner.NewSelection()
	for _, key := range placeKeys {
		sel.Toggle(planner.PlaceRef{ID: key})
	}

	req, err := planner.AssembleItineraryRequest(summary, mode, sel)
	if err != nil {
		return nil, err
	}
	if s.client == nil {
		return nil, utils.ErrMissingConfig
	}

	days, err := s.client.GenerateItinerary(ctx, req, s.sourcePlaces(ctx, req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	return &response_models.GenerateItineraryResponse{
		Success: true,
		Itinerary: response_models.ItineraryDocument{
			Itinerary:  days,
			DayViews:   planner.ProjectItinerary(days),
			DataSource: "gemini",
			EnrichedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// sourcePlaces resolves the catalog entries the generator grounds its
// plan on. The catalog is best effort in ai mode (the model can pick
// highlights itself); in custom mode unmatched keys fall through as
// bare name entries so generation still honors the user's list.
func (s *ItineraryService) sourcePlaces(ctx context.Context, req planner.ItineraryRequest) []response_models.Place {
	var catalog []response_models.Place
	if s.places != nil {
		base, err := s.places.GetPlacesByDestination(ctx, req.Destination)
		if err != nil {
			log.Printf("itinerary: catalog for %s unavailable: %v", req.Destination, err)
		} else {
			catalog = base.Catalog.All()
		}
	}
	if req.Mode != planner.ModeCustom {
		return catalog
	}

	byKey := make(map[string]response_models.Place, len(catalog))
	for _, p := range catalog {
		byKey[p.Key()] = p
	}
	out := make([]response_models.Place, 0, len(req.Places))
	for _, key := range req.Places {
		if p, ok := byKey[key]; ok {
			out = append(out, p)
			continue
		}
		out = append(out, response_models.Place{ID: key, DisplayName: key})
	}
	return out
}
