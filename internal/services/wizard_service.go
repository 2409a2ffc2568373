package services

import (
	"context"

	"tripwise/internal/models/response_models"
	"tripwise/internal/planner"
)

type WizardServiceInterface interface {
	GetState(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	SubmitStep(ctx context.Context, sessionID, step string, fields map[string]any) (*response_models.WizardStateResponse, error)
	Back(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	Reset(ctx context.Context, sessionID string) error
}

type WizardService struct {
	store planner.DraftStore
}

func NewWizardService(store planner.DraftStore) WizardServiceInterface {
	return &WizardService{store: store}
}

func (s *WizardService) GetState(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	w, err := planner.NewWizard(ctx, s.store, sessionID)
	if err != nil {
		return nil, err
	}
	return s.state(ctx, w)
}

// SubmitStep validates and merges one step's fields. The posted step
// must match the wizard's current position: the flow is strictly linear,
// no skipping and no jump-to-step.
func (s *WizardService) SubmitStep(ctx context.Context, sessionID, step string, fields map[string]any) (*response_models.WizardStateResponse, error) {
	w, err := planner.NewWizard(ctx, s.store, sessionID)
	if err != nil {
		return nil, err
	}
	if cur := w.Current(); string(cur) != step {
		return nil, &planner.ValidationError{
			Step:   planner.Step(step),
			Reason: "wizard is at step " + string(cur) + ", steps cannot be skipped",
		}
	}
	if _, err := w.Submit(ctx, planner.Draft(fields)); err != nil {
		return nil, err
	}
	return s.state(ctx, w)
}

func (s *WizardService) Back(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	w, err := planner.NewWizard(ctx, s.store, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := w.Back(ctx); err != nil {
		return nil, err
	}
	return s.state(ctx, w)
}

func (s *WizardService) Reset(ctx context.Context, sessionID string) error {
	w, err := planner.NewWizard(ctx, s.store, sessionID)
	if err != nil {
		return err
	}
	return w.Reset(ctx)
}

func (s *WizardService) state(ctx context.Context, w *planner.Wizard) (*response_models.WizardStateResponse, error) {
	draft, err := w.Draft(ctx)
	if err != nil {
		return nil, err
	}
	return &response_models.WizardStateResponse{
		Current:  string(w.Current()),
		Complete: w.Complete(),
		Draft:    draft,
	}, nil
}
