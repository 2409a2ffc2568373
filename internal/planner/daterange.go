package planner

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a wire date and truncates it to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RangeSelector is the calendar state machine behind the dates step.
// Start and End are zero until selected; the visible month cursor moves
// independently of the selection.
type RangeSelector struct {
	Start time.Time
	End   time.Time

	month time.Time
	now   func() time.Time
}

// NewRangeSelector opens the calendar on the current month.
func NewRangeSelector() *RangeSelector {
	return newRangeSelector(time.Now)
}

func newRangeSelector(now func() time.Time) *RangeSelector {
	today := midnight(now())
	return &RangeSelector{
		month: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
		now:   now,
	}
}

// Select applies one calendar click and reports whether the day was
// accepted. Days strictly before today are never selectable.
//
// With no start set, or with a complete range, the click begins a new
// range. Otherwise the click closes the range; a day at or before the
// pending start swaps with it, so start <= end always holds once the
// range is complete.
func (s *RangeSelector) Select(d time.Time) bool {
	d = midnight(d)
	if d.Before(midnight(s.now())) {
		return false
	}

	switch {
	case s.Start.IsZero() || !s.End.IsZero():
		s.Start = d
		s.End = time.Time{}
	case d.After(s.Start):
		s.End = d
	default:
		s.End = s.Start
		s.Start = d
	}
	return true
}

// Complete reports whether both bounds are set.
func (s *RangeSelector) Complete() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

// Duration is the trip length in days, counting both endpoints: a
// same-day trip has duration 1. It is 0 until the range is complete.
func (s *RangeSelector) Duration() int {
	if !s.Complete() {
		return 0
	}
	return DurationDays(s.Start, s.End)
}

// DurationDays counts calendar days between two dates inclusive of both
// endpoints.
func DurationDays(start, end time.Time) int {
	return int(midnight(end).Sub(midnight(start))/(24*time.Hour)) + 1
}

// Month returns the first day of the visible month.
func (s *RangeSelector) Month() time.Time { return s.month }

// NextMonth advances the visible month cursor without touching the
// selection.
func (s *RangeSelector) NextMonth() { s.month = s.month.AddDate(0, 1, 0) }

// PrevMonth moves the visible month cursor back one month.
func (s *RangeSelector) PrevMonth() { s.month = s.month.AddDate(0, -1, 0) }

// GridCell is one cell of the rendered month grid.
type GridCell struct {
	Day time.Time
	// InMonth is false for the padding days of the neighbouring months.
	// Those cells stay clickable but are rendered de-emphasized.
	InMonth bool
	// Selectable is false for days strictly before today.
	Selectable bool
}

// GridRows and GridCols fix the calendar layout: every month renders as
// the same 6x7 grid regardless of where its first day falls.
const (
	GridRows = 6
	GridCols = 7
)

// Grid produces the 42 cells of the visible month, padded with trailing
// days of the previous month so the 1st lands on its weekday column, and
// with leading days of the next month to fill the remaining cells.
func (s *RangeSelector) Grid() []GridCell {
	today := midnight(s.now())
	first := s.month
	lead := int(first.Weekday()) // Sunday-first columns

	cells := make([]GridCell, 0, GridRows*GridCols)
	day := first.AddDate(0, 0, -lead)
	for i := 0; i < GridRows*GridCols; i++ {
		cells = append(cells, GridCell{
			Day:        day,
			InMonth:    day.Month() == first.Month(),
			Selectable: !day.Before(today),
		})
		day = day.AddDate(0, 0, 1)
	}
	return cells
}
