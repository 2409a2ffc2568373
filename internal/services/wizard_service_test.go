package services

import (
	"context"
	"errors"
	"testing"

	"tripwise/internal/planner"
	mem "tripwise/pkg/memcache"
)

func TestWizardService_LinearFlow(t *testing.T) {
	ctx := context.Background()
	svc := NewWizardService(mem.NewDraftStore())

	state, err := svc.GetState(ctx, "s1")
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.Current != "destination" {
		t.Fatalf("initial step = %s", state.Current)
	}

	state, err = svc.SubmitStep(ctx, "s1", "destination", map[string]any{
		"from_location": "Delhi", "to_location": "Paris",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if state.Current != "details" {
		t.Errorf("step after submit = %s, want details", state.Current)
	}
	if state.Draft["from_location"] != "Delhi" {
		t.Errorf("draft missing merged field: %v", state.Draft)
	}
}

func TestWizardService_SkippingStepsRejected(t *testing.T) {
	svc := NewWizardService(mem.NewDraftStore())

	_, err := svc.SubmitStep(context.Background(), "s1", "preferences", map[string]any{"budget": 1500})
	var verr *planner.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestWizardService_BackAndReset(t *testing.T) {
	ctx := context.Background()
	svc := NewWizardService(mem.NewDraftStore())

	if _, err := svc.SubmitStep(ctx, "s1", "destination", map[string]any{
		"from_location": "Delhi", "to_location": "Paris",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	state, err := svc.Back(ctx, "s1")
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	if state.Current != "destination" {
		t.Errorf("step after back = %s", state.Current)
	}
	if state.Draft["to_location"] != "Paris" {
		t.Error("back must keep merged fields")
	}

	if err := svc.Reset(ctx, "s1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	state, _ = svc.GetState(ctx, "s1")
	if len(state.Draft) != 0 || state.Current != "destination" {
		t.Errorf("reset state = %+v, want empty draft at the first step", state)
	}
}
