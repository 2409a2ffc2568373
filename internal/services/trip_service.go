package services

import (
	"context"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/planner"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTripByID(ctx context.Context, id string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, page, pageSize int) ([]response_models.TripResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

// CreateTrip runs the full draft through every step validator one last
// time before persisting; the wizard already validated step by step, but
// a direct API call must not bypass the same rules.
func (t *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	draft := draftFromRequest(req)
	for _, step := range planner.Steps {
		if err := planner.ValidateStep(step, draft); err != nil {
			return nil, err
		}
	}

	start, _ := planner.ParseDate(req.StartDate)
	end, _ := planner.ParseDate(req.EndDate)
	durationDays := planner.DurationDays(start, end)

	trip := &db_models.Trip{
		FromLocation:      req.FromLocation,
		ToLocation:        req.ToLocation,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		DurationDays:      durationDays,
		TravelType:        req.TravelType,
		PeopleCount:       req.PeopleCount,
		HasElderly:        req.HasElderly,
		HasChildren:       req.HasChildren,
		HasPets:           req.HasPets,
		ChildrenCount:     req.ChildrenCount,
		ElderCount:        req.ElderCount,
		PetsCount:         req.PetsCount,
		WeatherPreference: req.WeatherPreference,
		ModeOfTransport:   req.ModeOfTransport,
		ExperienceType:    req.ExperienceType,
		TravelPreferences: req.TravelPreferences,
		Budget:            req.Budget,
	}

	if _, err := t.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildTripResponse(trip), nil
}

func (t *TripService) GetTripByID(ctx context.Context, id string) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return buildTripResponse(trip), nil
}

func (t *TripService) ListTrips(ctx context.Context, page, pageSize int) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListTrips(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *buildTripResponse(&trips[i]))
	}
	return out, nil
}

func draftFromRequest(req request_models.CreateTripRequest) planner.Draft {
	prefs := make([]any, 0, len(req.TravelPreferences))
	for _, p := range req.TravelPreferences {
		prefs = append(prefs, p)
	}
	return planner.Draft{
		"from_location":      req.FromLocation,
		"to_location":        req.ToLocation,
		"start_date":         req.StartDate,
		"end_date":           req.EndDate,
		"travel_type":        req.TravelType,
		"people_count":       req.PeopleCount,
		"has_elderly":        req.HasElderly,
		"has_children":       req.HasChildren,
		"has_pets":           req.HasPets,
		"children_count":     req.ChildrenCount,
		"elder_count":        req.ElderCount,
		"pets_count":         req.PetsCount,
		"weather_preference": req.WeatherPreference,
		"mode_of_transport":  req.ModeOfTransport,
		"experience_type":    req.ExperienceType,
		"travel_preferences": prefs,
		"budget":             req.Budget,
	}
}

func buildTripResponse(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:                trip.ID.String(),
		FromLocation:      trip.FromLocation,
		ToLocation:        trip.ToLocation,
		StartDate:         trip.StartDate,
		EndDate:           trip.EndDate,
		DurationDays:      trip.DurationDays,
		TravelType:        trip.TravelType,
		PeopleCount:       trip.PeopleCount,
		HasElderly:        trip.HasElderly,
		HasChildren:       trip.HasChildren,
		HasPets:           trip.HasPets,
		ChildrenCount:     trip.ChildrenCount,
		ElderCount:        trip.ElderCount,
		PetsCount:         trip.PetsCount,
		WeatherPreference: trip.WeatherPreference,
		ModeOfTransport:   trip.ModeOfTransport,
		ExperienceType:    trip.ExperienceType,
		TravelPreferences: trip.TravelPreferences,
		Budget:            trip.Budget,
		CreatedAt:         trip.CreatedAt,
	}
}
