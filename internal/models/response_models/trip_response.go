package response_models

// TripResponse echoes a created trip with its server-assigned identity.
type TripResponse struct {
	ID           string `json:"id"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`

	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	DurationDays int    `json:"duration_days"`

	TravelType  string `json:"travel_type"`
	PeopleCount int    `json:"people_count"`

	HasElderly    bool `json:"has_elderly"`
	HasChildren   bool `json:"has_children"`
	HasPets       bool `json:"has_pets"`
	ChildrenCount int  `json:"children_count"`
	ElderCount    int  `json:"elder_count"`
	PetsCount     int  `json:"pets_count"`

	WeatherPreference string   `json:"weather_preference,omitempty"`
	ModeOfTransport   string   `json:"mode_of_transport"`
	ExperienceType    string   `json:"experience_type,omitempty"`
	TravelPreferences []string `json:"travel_preferences"`
	Budget            int      `json:"budget"`

	CreatedAt int64 `json:"created_at"`
}
