package response_models

import "tripwise/internal/planner"

// ItineraryDocument is the generated day-by-day plan plus the projected
// view the itinerary page renders from.
type ItineraryDocument struct {
	Itinerary  []planner.DayPlan `json:"itinerary"`
	DayViews   []planner.DayView `json:"day_views"`
	DataSource string            `json:"data_source,omitempty"`
	EnrichedAt string            `json:"enriched_at,omitempty"`
}

// GenerateItineraryResponse is the generation envelope the original
// frontend consumed: success flag first, document under "itinerary".
type GenerateItineraryResponse struct {
	Success   bool              `json:"success"`
	Itinerary ItineraryDocument `json:"itinerary"`
	Error     string            `json:"error,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Coordinates is a best-effort geocoding result; Found is false when the
// lookup degraded to "no coordinates available".
type Coordinates struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label,omitempty"`
	Found bool    `json:"found"`
}

// WizardStateResponse reports the wizard position and the persisted
// draft so a step can seed its form fields.
type WizardStateResponse struct {
	Current  string         `json:"current_step"`
	Complete bool           `json:"complete"`
	Draft    map[string]any `json:"draft"`
}
