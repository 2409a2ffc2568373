package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripwise/internal/models/response_models"
)

func TestGeocodeService_ResolveIsBestEffort(t *testing.T) {
	tests := []struct {
		name      string
		client    *fakeGeocodeClient
		query     string
		wantFound bool
	}{
		{"hit", &fakeGeocodeClient{lat: 48.85, lng: 2.35, found: true}, "Paris", true},
		{"miss", &fakeGeocodeClient{found: false}, "Atlantis", false},
		{"upstream failure", &fakeGeocodeClient{err: errors.New("timeout")}, "Paris", false},
		{"blank query", &fakeGeocodeClient{found: true}, "  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGeocodeService(tt.client)
			coords := svc.Resolve(context.Background(), tt.query)
			if coords.Found != tt.wantFound {
				t.Errorf("found = %v, want %v", coords.Found, tt.wantFound)
			}
		})
	}
}

func TestGeocodeService_NilClientResolvesNothing(t *testing.T) {
	svc := NewGeocodeService(nil)
	if coords := svc.Resolve(context.Background(), "Paris"); coords.Found {
		t.Error("nil client must not report a hit")
	}
}

func TestGeocodeService_DebounceCoalescesRapidQueries(t *testing.T) {
	client := &fakeGeocodeClient{lat: 48.85, lng: 2.35, found: true}
	svc := NewGeocodeService(client)

	delivered := make(chan response_models.Coordinates, 4)
	deliver := func(c response_models.Coordinates) { delivered <- c }

	// Three keystrokes in quick succession; only the last survives the
	// quiet period.
	svc.ResolveDebounced("P", deliver)
	svc.ResolveDebounced("Pa", deliver)
	svc.ResolveDebounced("Paris", deliver)

	select {
	case coords := <-delivered:
		if coords.Label != "Paris" {
			t.Errorf("delivered label = %q, want the final query", coords.Label)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("debounced lookup never delivered")
	}

	if client.calls != 1 {
		t.Errorf("geocode calls = %d, want 1", client.calls)
	}
	select {
	case extra := <-delivered:
		t.Errorf("unexpected extra delivery: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}
