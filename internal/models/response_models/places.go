package response_models

// Place is one catalog entry. Depending on the upstream variant a place
// carries an id or a place_id; selection treats the two as one key.
type Place struct {
	ID          string   `json:"id,omitempty"`
	PlaceID     string   `json:"place_id,omitempty"`
	DisplayName string   `json:"displayName,omitempty"`
	Address     string   `json:"formattedAddress,omitempty"`
	Types       []string `json:"types,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	RatingCount int      `json:"user_ratings_total,omitempty"`
	Phone       string   `json:"internationalPhoneNumber,omitempty"`
	PlaceURI    string   `json:"placeUri,omitempty"`
	Summary     string   `json:"reviewSummary_text,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}

// Key returns the canonical selection key, preferring the primary id.
func (p Place) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.PlaceID
}

// PlacesCatalog is the categorized shape every places endpoint returns.
type PlacesCatalog struct {
	TouristAttractions []Place `json:"tourist_attractions"`
	Restaurants        []Place `json:"restaurants"`
	Lodging            []Place `json:"lodging"`
}

// All flattens the catalog in category order.
func (c PlacesCatalog) All() []Place {
	out := make([]Place, 0, len(c.TouristAttractions)+len(c.Restaurants)+len(c.Lodging))
	out = append(out, c.TouristAttractions...)
	out = append(out, c.Restaurants...)
	out = append(out, c.Lodging...)
	return out
}

// PlacesResponse is the plain places-by-destination payload.
type PlacesResponse struct {
	Destination string        `json:"destination"`
	Catalog     PlacesCatalog `json:"catalog"`
}

// PreferencePlacesResponse pairs the unfiltered reference catalog with
// the preference-ranked recommendation of the same shape.
type PreferencePlacesResponse struct {
	Destination string        `json:"destination"`
	Reference   PlacesCatalog `json:"reference"`
	Recommended PlacesCatalog `json:"recommended"`
}
