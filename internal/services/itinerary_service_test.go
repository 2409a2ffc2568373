package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/planner"
	"tripwise/pkg/utils"
)

type fakeItineraryClient struct {
	calls    int
	lastReq  planner.ItineraryRequest
	lastSrc  []response_models.Place
	days     []planner.DayPlan
	failWith error
}

func (f *fakeItineraryClient) GenerateItinerary(_ context.Context, req planner.ItineraryRequest, places []response_models.Place) ([]planner.DayPlan, error) {
	f.calls++
	f.lastReq = req
	f.lastSrc = places
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.days, nil
}

type fakePlacesService struct {
	catalog response_models.PlacesCatalog
	err     error
}

func (f *fakePlacesService) GetPlacesByDestination(_ context.Context, destination string) (*response_models.PlacesResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.PlacesResponse{Destination: destination, Catalog: f.catalog}, nil
}

func (f *fakePlacesService) GetPreferencePlaces(_ context.Context, destination string, _ []string, _ string) (*response_models.PreferencePlacesResponse, error) {
	return nil, errors.New("not used")
}

type fakeTripRepo struct {
	trips map[string]*db_models.Trip
}

func (f *fakeTripRepo) CreateTrip(_ context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	trip.ID = uuid.New()
	if f.trips == nil {
		f.trips = make(map[string]*db_models.Trip)
	}
	f.trips[trip.ID.String()] = trip
	return trip.ID, nil
}

func (f *fakeTripRepo) GetTripByID(_ context.Context, id string) (*db_models.Trip, error) {
	return f.trips[id], nil
}

func (f *fakeTripRepo) ListTrips(_ context.Context, _, _ int) ([]db_models.Trip, error) {
	out := make([]db_models.Trip, 0, len(f.trips))
	for _, t := range f.trips {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTripRepo) GetLatestTrip(_ context.Context) (*db_models.Trip, error) {
	for _, t := range f.trips {
		return t, nil
	}
	return nil, nil
}

func sampleDays() []planner.DayPlan {
	return []planner.DayPlan{
		{Day: 1, Theme: "Arrival", Activities: []planner.Activity{
			{Place: "Louvre", Time: "10:00 AM", Details: "Museum visit"},
		}},
	}
}

func TestItineraryService_CustomModeEmptySelectionFailsBeforeUpstream(t *testing.T) {
	client := &fakeItineraryClient{days: sampleDays()}
	svc := NewItineraryService(client, &fakePlacesService{}, &fakeTripRepo{})

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Paris", Days: 3, Mode: "custom",
	})
	if !errors.Is(err, planner.ErrNoPlacesSelected) {
		t.Fatalf("err = %v, want ErrNoPlacesSelected", err)
	}
	if client.calls != 0 {
		t.Errorf("upstream called %d times, want 0", client.calls)
	}
}

func TestItineraryService_UnknownModeRejected(t *testing.T) {
	client := &fakeItineraryClient{}
	svc := NewItineraryService(client, &fakePlacesService{}, &fakeTripRepo{})

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Paris", Days: 3, Mode: "magic",
	})
	if !errors.Is(err, planner.ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
}

func TestItineraryService_GenerateProjectsDayViews(t *testing.T) {
	client := &fakeItineraryClient{days: sampleDays()}
	svc := NewItineraryService(client, &fakePlacesService{}, &fakeTripRepo{})

	resp, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Paris", Days: 1, Mode: "ai",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !resp.Success {
		t.Error("success flag should be set")
	}
	if len(resp.Itinerary.DayViews) != 1 {
		t.Fatalf("day views = %d, want 1", len(resp.Itinerary.DayViews))
	}
	if client.lastReq.Mode != planner.ModeAI {
		t.Errorf("mode sent upstream = %s, want ai", client.lastReq.Mode)
	}
}

func TestItineraryService_CustomModeResolvesSelectedPlaces(t *testing.T) {
	catalog := response_models.PlacesCatalog{
		TouristAttractions: []response_models.Place{
			{ID: "p1", DisplayName: "Louvre"},
			{ID: "p2", DisplayName: "Eiffel Tower"},
		},
	}
	client := &fakeItineraryClient{days: sampleDays()}
	svc := NewItineraryService(client, &fakePlacesService{catalog: catalog}, &fakeTripRepo{})

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Paris", Days: 1, Mode: "custom", Places: []string{"p1", "unknown-key"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(client.lastSrc) != 2 {
		t.Fatalf("source places = %d, want 2", len(client.lastSrc))
	}

	names := map[string]bool{}
	for _, p := range client.lastSrc {
		names[p.DisplayName] = true
	}
	if !names["Louvre"] {
		t.Error("catalog entry for selected key missing from source places")
	}
	if !names["unknown-key"] {
		t.Error("unmatched key should pass through as a bare name entry")
	}
}

func TestItineraryService_NilClientIsNotConfigured(t *testing.T) {
	svc := NewItineraryService(nil, &fakePlacesService{}, &fakeTripRepo{})

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Paris", Days: 2, Mode: "ai",
	})
	if !errors.Is(err, utils.ErrMissingConfig) {
		t.Fatalf("err = %v, want ErrMissingConfig", err)
	}
}

func TestItineraryService_GenerateForTrip(t *testing.T) {
	repo := &fakeTripRepo{}
	id, _ := repo.CreateTrip(context.Background(), &db_models.Trip{
		ToLocation: "Rome", DurationDays: 2, TravelPreferences: []string{"history"},
	})

	client := &fakeItineraryClient{days: sampleDays()}
	svc := NewItineraryService(client, &fakePlacesService{}, repo)

	if _, err := svc.GenerateForTrip(context.Background(), id.String(), "ai", nil); err != nil {
		t.Fatalf("generate for trip: %v", err)
	}
	if client.lastReq.Destination != "Rome" || client.lastReq.Days != 2 {
		t.Errorf("request = %+v, want destination Rome over 2 days", client.lastReq)
	}

	_, err := svc.GenerateForTrip(context.Background(), uuid.NewString(), "ai", nil)
	if !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("err = %v, want ErrTripNotFound", err)
	}
}

func TestItineraryService_UpstreamFailureMapsToGenerationFailed(t *testing.T) {
	client := &fakeItineraryClient{failWith: errors.New("model overloaded")}
	svc := NewItineraryService(client, &fakePlacesService{}, &fakeTripRepo{})

	_, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Paris", Days: 1, Mode: "ai",
	})
	if !errors.Is(err, utils.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}
