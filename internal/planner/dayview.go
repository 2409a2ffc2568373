package planner

import (
	"strings"
	"time"
)

// Period is the coarse time-of-day bucket an activity renders under.
type Period string

const (
	PeriodMorning Period = "morning"
	PeriodEvening Period = "evening"
)

// Activity is one entry of a generated day plan as the generation
// service returns it.
type Activity struct {
	Place   string `json:"place"`
	Time    string `json:"time"`
	Details string `json:"details"`
}

// DayPlan is one day of the generated itinerary.
type DayPlan struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// ActivityView is an activity projected for rendering, with its derived
// time-of-day period.
type ActivityView struct {
	Place   string `json:"place"`
	Time    string `json:"time"`
	Details string `json:"details"`
	Period  Period `json:"period"`
}

// DayView is one rendered day section.
type DayView struct {
	Day        int            `json:"day"`
	Theme      string         `json:"theme"`
	Activities []ActivityView `json:"activities"`
}

// ProjectItinerary turns the generation response into day sections in
// response order. Missing optional fields (themes, details, times)
// project to empty values rather than failing; the generator's ordering
// is trusted as-is.
func ProjectItinerary(days []DayPlan) []DayView {
	out := make([]DayView, 0, len(days))
	for _, d := range days {
		view := DayView{
			Day:        d.Day,
			Theme:      d.Theme,
			Activities: make([]ActivityView, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			view.Activities = append(view.Activities, ActivityView{
				Place:   a.Place,
				Time:    a.Time,
				Details: a.Details,
				Period:  PeriodOf(a.Time),
			})
		}
		out = append(out, view)
	}
	return out
}

var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM", "3 PM", "3PM", "15"}

// PeriodOf buckets a free-text time label. Labels that parse as a clock
// time are bucketed by hour. Anything else falls back to a
// case-insensitive "am" substring check; a label without "am" counts as
// an evening activity. The fallback is a presentation heuristic, not a
// guarantee from the data source.
func PeriodOf(label string) Period {
	trimmed := strings.TrimSpace(label)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(trimmed)); err == nil {
			if t.Hour() < 12 {
				return PeriodMorning
			}
			return PeriodEvening
		}
	}
	if strings.Contains(strings.ToLower(trimmed), "am") {
		return PeriodMorning
	}
	return PeriodEvening
}
