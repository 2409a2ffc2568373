package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type fakeGeocodeClient struct {
	lat, lng float64
	found    bool
	err      error
	calls    int
}

func (f *fakeGeocodeClient) Geocode(_ context.Context, _ string) (float64, float64, bool, error) {
	f.calls++
	return f.lat, f.lng, f.found, f.err
}

type fakeNearbyClient struct {
	calls   int
	byType  map[string][]response_models.Place
	failAll bool
}

func (f *fakeNearbyClient) SearchNearby(_ context.Context, _, _ float64, includedTypes []string, _ float64) ([]response_models.Place, error) {
	f.calls++
	if f.failAll {
		return nil, errors.New("quota exceeded")
	}
	if len(includedTypes) == 0 {
		return nil, nil
	}
	return f.byType[includedTypes[0]], nil
}

func testCatalogClient() *fakeNearbyClient {
	return &fakeNearbyClient{byType: map[string][]response_models.Place{
		"tourist_attraction": {
			{ID: "a1", DisplayName: "City Museum", Types: []string{"museum"}},
			{ID: "a2", DisplayName: "River Park", Types: []string{"park"}},
		},
		"restaurant": {
			{ID: "r1", DisplayName: "Trattoria", Types: []string{"restaurant"}},
		},
		"lodging": {
			{ID: "l1", DisplayName: "Grand Hotel", Types: []string{"lodging"}},
		},
	}}
}

func TestPlacesService_EmptyDestinationIsTerminal(t *testing.T) {
	svc := NewPlacesService(&fakeGeocodeClient{}, testCatalogClient(), nil, nil, nil, nil)

	_, err := svc.GetPlacesByDestination(context.Background(), "   ")
	if !errors.Is(err, utils.ErrDestinationMissing) {
		t.Fatalf("err = %v, want ErrDestinationMissing", err)
	}
}

func TestPlacesService_UnresolvableDestination(t *testing.T) {
	svc := NewPlacesService(&fakeGeocodeClient{found: false}, testCatalogClient(), nil, nil, nil, nil)

	_, err := svc.GetPlacesByDestination(context.Background(), "Atlantis")
	if !errors.Is(err, utils.ErrDestinationMissing) {
		t.Fatalf("err = %v, want ErrDestinationMissing", err)
	}
}

func TestPlacesService_NilClientsReportMissingConfig(t *testing.T) {
	svc := NewPlacesService(nil, nil, nil, nil, nil, nil)

	_, err := svc.GetPlacesByDestination(context.Background(), "Paris")
	if !errors.Is(err, utils.ErrMissingConfig) {
		t.Fatalf("err = %v, want ErrMissingConfig", err)
	}
}

func TestPlacesService_CatalogCoversAllCategories(t *testing.T) {
	nearby := testCatalogClient()
	svc := NewPlacesService(&fakeGeocodeClient{found: true}, nearby, nil, nil, nil, nil)

	resp, err := svc.GetPlacesByDestination(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("get places: %v", err)
	}
	if len(resp.Catalog.TouristAttractions) != 2 ||
		len(resp.Catalog.Restaurants) != 1 ||
		len(resp.Catalog.Lodging) != 1 {
		t.Errorf("catalog = %+v, want 2/1/1 entries", resp.Catalog)
	}
	if nearby.calls != 3 {
		t.Errorf("nearby searches = %d, want one per category", nearby.calls)
	}
}

func TestPlacesService_SecondFetchServedFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	geocode := &fakeGeocodeClient{found: true}
	nearby := testCatalogClient()
	svc := NewPlacesService(geocode, nearby, rdb, nil, nil, nil)

	if _, err := svc.GetPlacesByDestination(context.Background(), "Paris"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	resp, err := svc.GetPlacesByDestination(context.Background(), "paris")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if geocode.calls != 1 || nearby.calls != 3 {
		t.Errorf("upstream calls after cached fetch = geocode %d, nearby %d; want 1 and 3",
			geocode.calls, nearby.calls)
	}
	if len(resp.Catalog.TouristAttractions) != 2 {
		t.Errorf("cached catalog lost entries: %+v", resp.Catalog)
	}
}

func TestPlacesService_UpstreamFailureSurfaces(t *testing.T) {
	nearby := testCatalogClient()
	nearby.failAll = true
	svc := NewPlacesService(&fakeGeocodeClient{found: true}, nearby, nil, nil, nil, nil)

	_, err := svc.GetPlacesByDestination(context.Background(), "Paris")
	if !errors.Is(err, utils.ErrUpstreamError) {
		t.Fatalf("err = %v, want ErrUpstreamError", err)
	}
}

func TestPlacesService_PreferenceRankingByKeyword(t *testing.T) {
	svc := NewPlacesService(&fakeGeocodeClient{found: true}, testCatalogClient(), nil, nil, nil, nil)

	resp, err := svc.GetPreferencePlaces(context.Background(), "Paris", []string{"park"}, "")
	if err != nil {
		t.Fatalf("preference places: %v", err)
	}

	// Reference keeps upstream order, recommended floats the match.
	if got := resp.Reference.TouristAttractions[0].ID; got != "a1" {
		t.Errorf("reference order changed, first = %s", got)
	}
	if got := resp.Recommended.TouristAttractions[0].ID; got != "a2" {
		t.Errorf("recommended first = %s, want the park (a2)", got)
	}
}

func TestPlacesService_DefaultsToLatestTripPreferences(t *testing.T) {
	repo := &fakeTripRepo{}
	if _, err := repo.CreateTrip(context.Background(), &db_models.Trip{
		ToLocation: "Paris", TravelPreferences: []string{"park"},
	}); err != nil {
		t.Fatalf("seed trip: %v", err)
	}

	svc := NewPlacesService(&fakeGeocodeClient{found: true}, testCatalogClient(), nil, nil, nil, repo)

	resp, err := svc.GetPreferencePlaces(context.Background(), "Paris", nil, "")
	if err != nil {
		t.Fatalf("preference places: %v", err)
	}
	if got := resp.Recommended.TouristAttractions[0].ID; got != "a2" {
		t.Errorf("recommended first = %s, want the park (a2) ranked by the trip's tags", got)
	}
}

func TestPlacesService_NoPreferencesMeansIdenticalCatalogs(t *testing.T) {
	svc := NewPlacesService(&fakeGeocodeClient{found: true}, testCatalogClient(), nil, nil, nil, nil)

	resp, err := svc.GetPreferencePlaces(context.Background(), "Paris", nil, "")
	if err != nil {
		t.Fatalf("preference places: %v", err)
	}
	if len(resp.Recommended.TouristAttractions) != len(resp.Reference.TouristAttractions) {
		t.Error("recommended should mirror reference when no preferences are given")
	}
}
