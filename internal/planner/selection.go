package planner

import "sort"

// PlaceRef is the minimal identity of a catalog place. Catalog entries
// carry either an id or a place_id depending on which upstream produced
// them; both name the same place and map to one selection key.
type PlaceRef struct {
	ID      string
	PlaceID string
}

// Key returns the canonical selection key for the place.
func (p PlaceRef) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.PlaceID
}

// Selection is the set of places chosen for a custom itinerary. It is
// cleared on every entry to the places page so a previous trip's picks
// never leak into a new one.
type Selection struct {
	keys map[string]PlaceRef
}

func NewSelection() *Selection {
	return &Selection{keys: make(map[string]PlaceRef)}
}

// Toggle flips the place's membership and reports whether it is selected
// afterwards. Toggling twice restores the original state.
func (s *Selection) Toggle(p PlaceRef) bool {
	k := p.Key()
	if k == "" {
		return false
	}
	if _, ok := s.keys[k]; ok {
		delete(s.keys, k)
		return false
	}
	s.keys[k] = p
	return true
}

// Has reports whether the place is selected.
func (s *Selection) Has(p PlaceRef) bool {
	_, ok := s.keys[p.Key()]
	return ok
}

// SelectAll adds every listed place. It operates over the full list of
// the active category, not the visible page.
func (s *Selection) SelectAll(places []PlaceRef) {
	for _, p := range places {
		if k := p.Key(); k != "" {
			s.keys[k] = p
		}
	}
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.keys = make(map[string]PlaceRef)
}

func (s *Selection) Len() int { return len(s.keys) }

// Keys returns the selected place keys in a stable order.
func (s *Selection) Keys() []string {
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// TotalPages is the page count for a list of n items: ceil(n/pageSize),
// never less than 1 even for an empty list. Pagination is purely a view
// concern; selection operations ignore it.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PageBounds clips the half-open [lo, hi) slice window of one page.
func PageBounds(n, page, pageSize int) (lo, hi int) {
	if page < 1 {
		page = 1
	}
	lo = (page - 1) * pageSize
	if lo > n {
		lo = n
	}
	hi = lo + pageSize
	if hi > n {
		hi = n
	}
	return lo, hi
}
