package request_models

// CreateTripRequest is the full draft payload the final wizard step
// submits. Counts gated behind their has_* flag are meaningful only when
// the flag is true.
type CreateTripRequest struct {
	FromLocation string `json:"from_location" binding:"required"`
	ToLocation   string `json:"to_location" binding:"required"`

	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date"`
	DurationDays int    `json:"duration_days"`

	TravelType  string `json:"travel_type" binding:"required"`
	PeopleCount int    `json:"people_count" binding:"required,min=1"`

	HasElderly    bool `json:"has_elderly"`
	HasChildren   bool `json:"has_children"`
	HasPets       bool `json:"has_pets"`
	ChildrenCount int  `json:"children_count"`
	ElderCount    int  `json:"elder_count"`
	PetsCount     int  `json:"pets_count"`

	WeatherPreference string   `json:"weather_preference"`
	ModeOfTransport   string   `json:"mode_of_transport" binding:"required"`
	ExperienceType    string   `json:"experience_type"`
	TravelPreferences []string `json:"travel_preferences"`
	Budget            int      `json:"budget" binding:"required"`
}
