package services

import (
	"context"
	"errors"
	"testing"

	"tripwise/internal/models/request_models"
	"tripwise/internal/planner"
)

func validTripRequest() request_models.CreateTripRequest {
	return request_models.CreateTripRequest{
		FromLocation:      "Delhi",
		ToLocation:        "Paris",
		StartDate:         "2025-06-10",
		EndDate:           "2025-06-13",
		TravelType:        "couple",
		PeopleCount:       2,
		ModeOfTransport:   "train",
		ExperienceType:    "moderate",
		TravelPreferences: []string{"food", "history"},
		Budget:            1500,
	}
}

func TestTripService_CreateTripDerivesDuration(t *testing.T) {
	svc := NewTripService(&fakeTripRepo{})

	trip, err := svc.CreateTrip(context.Background(), validTripRequest())
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	if trip.DurationDays != 4 {
		t.Errorf("duration = %d, want 4 (inclusive of both endpoints)", trip.DurationDays)
	}
	if trip.ID == "" {
		t.Error("created trip carries no id")
	}
}

func TestTripService_CreateTripRevalidatesEverything(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request_models.CreateTripRequest)
	}{
		{"same source and destination", func(r *request_models.CreateTripRequest) {
			r.FromLocation = "paris"
		}},
		{"reversed dates", func(r *request_models.CreateTripRequest) {
			r.StartDate, r.EndDate = r.EndDate, r.StartDate
		}},
		{"budget off step", func(r *request_models.CreateTripRequest) {
			r.Budget = 1250
		}},
		{"children flag without count", func(r *request_models.CreateTripRequest) {
			r.HasChildren = true
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTripService(&fakeTripRepo{})
			req := validTripRequest()
			tt.mutate(&req)

			_, err := svc.CreateTrip(context.Background(), req)
			var verr *planner.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestTripService_GetAndList(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := NewTripService(repo)

	created, err := svc.CreateTrip(context.Background(), validTripRequest())
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	got, err := svc.GetTripByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get trip: %v", err)
	}
	if got.ToLocation != "Paris" {
		t.Errorf("to_location = %s", got.ToLocation)
	}

	trips, err := svc.ListTrips(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("list trips: %v", err)
	}
	if len(trips) != 1 {
		t.Errorf("trips = %d, want 1", len(trips))
	}
}
