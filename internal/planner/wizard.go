package planner

import (
	"context"
	"errors"
	"fmt"
)

// progressKey is the reserved draft field holding how far the wizard has
// advanced. It lives inside the draft so a reload resumes at the right
// step.
const progressKey = "wizard_step"

var ErrWizardComplete = errors.New("wizard already completed")

// Wizard sequences the trip steps over a draft store. It is a linear
// state machine: submitting the current step validates it, merges its
// fields into the persisted draft and advances; back navigation never
// discards already-merged fields.
type Wizard struct {
	store DraftStore
	id    string
	idx   int
}

// NewWizard binds a wizard to one draft session, resuming from any
// previously persisted progress.
func NewWizard(ctx context.Context, store DraftStore, sessionID string) (*Wizard, error) {
	w := &Wizard{store: store, id: sessionID}
	d, err := store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if idx := d.Int(progressKey); idx > 0 && idx <= len(Steps) {
		w.idx = idx
	}
	return w, nil
}

// Current returns the step awaiting submission, or "" once every step
// has been submitted.
func (w *Wizard) Current() Step {
	if w.Complete() {
		return ""
	}
	return Steps[w.idx]
}

// Complete reports whether the final step has been submitted.
func (w *Wizard) Complete() bool { return w.idx >= len(Steps) }

// Draft loads the persisted draft so a step can seed its form fields.
func (w *Wizard) Draft(ctx context.Context) (Draft, error) {
	return w.store.Load(ctx, w.id)
}

// Submit validates the current step against the stored draft overlaid
// with the submitted fields, merges them and advances. On a validation
// failure nothing is merged and the wizard stays put, so already-entered
// fields survive.
func (w *Wizard) Submit(ctx context.Context, fields Draft) (next Step, err error) {
	if w.Complete() {
		return "", ErrWizardComplete
	}
	cur := Steps[w.idx]

	stored, err := w.store.Load(ctx, w.id)
	if err != nil {
		return cur, err
	}
	if err := ValidateStep(cur, stored.Apply(fields)); err != nil {
		return cur, err
	}

	partial := fields.Apply(Draft{progressKey: w.idx + 1})
	if days, ok := derivedDuration(stored.Apply(partial)); ok {
		partial["duration_days"] = days
	}
	if err := w.store.Merge(ctx, w.id, partial); err != nil {
		return cur, fmt.Errorf("persist step %s: %w", cur, err)
	}
	w.idx++
	return w.Current(), nil
}

// Back moves one step backward and persists the new position. The
// merged draft fields are left untouched.
func (w *Wizard) Back(ctx context.Context) (Step, error) {
	if w.idx == 0 {
		return Steps[0], nil
	}
	if err := w.store.Merge(ctx, w.id, Draft{progressKey: w.idx - 1}); err != nil {
		return Steps[w.idx], err
	}
	w.idx--
	return Steps[w.idx], nil
}

// Reset clears the persisted draft and rewinds to the first step.
func (w *Wizard) Reset(ctx context.Context) error {
	if err := w.store.Clear(ctx, w.id); err != nil {
		return err
	}
	w.idx = 0
	return nil
}

// derivedDuration keeps duration_days derived from the date pair; it is
// recomputed on every submit that leaves both dates set and in order.
func derivedDuration(merged Draft) (int, bool) {
	start, err1 := ParseDate(merged.String("start_date"))
	end, err2 := ParseDate(merged.String("end_date"))
	if err1 != nil || err2 != nil || end.Before(start) {
		return 0, false
	}
	return DurationDays(start, end), true
}
