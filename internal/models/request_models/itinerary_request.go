package request_models

// GenerateItineraryRequest mirrors the assembled generation payload.
// Places must be non-empty when Mode is "custom" and absent otherwise;
// the service re-checks this before any upstream call.
type GenerateItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1"`
	Preferences []string `json:"preferences"`
	Mode        string   `json:"mode" binding:"required"`
	Places      []string `json:"places"`
}

// GenerateTripItineraryRequest drives generation from a saved trip; the
// destination, day count and preferences come from the trip record.
type GenerateTripItineraryRequest struct {
	Mode   string   `json:"mode" binding:"required"`
	Places []string `json:"places"`
}
