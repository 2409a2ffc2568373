package planner

import "errors"

// Mode selects how the itinerary is generated: "ai" lets the backend
// pick the destination highlights, "custom" drives generation from the
// user's selected place list.
type Mode string

const (
	ModeAI     Mode = "ai"
	ModeCustom Mode = "custom"
)

var (
	ErrNoPlacesSelected = errors.New("no places selected")
	ErrUnknownMode      = errors.New("unknown itinerary mode")
)

// TripSummary is the slice of a created trip that itinerary generation
// needs.
type TripSummary struct {
	Destination string
	Days        int
	Preferences []string
}

// ItineraryRequest is the payload sent to itinerary generation. Places
// is present only in custom mode, where it must be non-empty.
type ItineraryRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Preferences []string `json:"preferences"`
	Mode        Mode     `json:"mode"`
	Places      []string `json:"places,omitempty"`
}

// AssembleItineraryRequest builds the generation payload from a created
// trip and the chosen mode. Custom mode with an empty selection fails
// here, before any network call is attempted.
func AssembleItineraryRequest(trip TripSummary, mode Mode, sel *Selection) (ItineraryRequest, error) {
	req := ItineraryRequest{
		Destination: trip.Destination,
		Days:        trip.Days,
		Preferences: trip.Preferences,
		Mode:        mode,
	}
	if req.Preferences == nil {
		req.Preferences = []string{}
	}

	switch mode {
	case ModeAI:
	case ModeCustom:
		if sel == nil || sel.Len() == 0 {
			return ItineraryRequest{}, ErrNoPlacesSelected
		}
		req.Places = sel.Keys()
	default:
		return ItineraryRequest{}, ErrUnknownMode
	}
	return req, nil
}
