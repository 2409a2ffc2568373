package planner

import (
	"fmt"
	"strings"
)

// Step identifies one page of the trip wizard.
type Step string

const (
	StepDestination Step = "destination"
	StepDetails     Step = "details"
	StepGroup       Step = "group-details"
	StepPreferences Step = "preferences"
)

// Steps is the wizard order. Navigation is strictly forward or backward
// through this list; there is no skipping.
var Steps = []Step{StepDestination, StepDetails, StepGroup, StepPreferences}

var TravelTypes = []string{"solo", "duo", "couple", "family", "friends", "business"}

var TransportModes = []string{"flight", "train", "car", "bike", "mixed"}

var WeatherPreferences = []string{"warm", "cool", "cold", "any"}

const (
	BudgetMin  = 500
	BudgetMax  = 10000
	BudgetStep = 500
)

// ValidationError reports why a step may not advance. Missing lists the
// required fields that are absent; Reason carries semantic failures such
// as a reversed date range.
type ValidationError struct {
	Step    Step
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("step %s: missing required fields: %s", e.Step, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("step %s: %s", e.Step, e.Reason)
}

var stepRequirements = map[Step][]string{
	StepDestination: {"from_location", "to_location"},
	StepDetails:     {"travel_type", "start_date", "end_date"},
	StepGroup:       {"people_count"},
	StepPreferences: {"mode_of_transport", "experience_type", "budget"},
}

// ValidateStep checks the merged draft against the requirements of one
// step. Checks are local only; nothing is re-validated against backend
// constraints. A failed validation never clears already-entered fields.
func ValidateStep(step Step, d Draft) error {
	var missing []string
	for _, field := range stepRequirements[step] {
		if !d.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Step: step, Missing: missing}
	}

	switch step {
	case StepDestination:
		from := strings.TrimSpace(d.String("from_location"))
		to := strings.TrimSpace(d.String("to_location"))
		if strings.EqualFold(from, to) {
			return &ValidationError{Step: step, Reason: "source and destination cannot be the same"}
		}
	case StepDetails:
		if !contains(TravelTypes, d.String("travel_type")) {
			return &ValidationError{Step: step, Reason: "unknown travel_type " + d.String("travel_type")}
		}
		start, err := ParseDate(d.String("start_date"))
		if err != nil {
			return &ValidationError{Step: step, Reason: "start_date is not a valid date"}
		}
		end, err := ParseDate(d.String("end_date"))
		if err != nil {
			return &ValidationError{Step: step, Reason: "end_date is not a valid date"}
		}
		if end.Before(start) {
			return &ValidationError{Step: step, Reason: "end_date is before start_date"}
		}
		if wp := d.String("weather_preference"); wp != "" && !contains(WeatherPreferences, wp) {
			return &ValidationError{Step: step, Reason: "unknown weather_preference " + wp}
		}
	case StepGroup:
		if d.Int("people_count") < 1 {
			return &ValidationError{Step: step, Reason: "people_count must be at least 1"}
		}
		if d.Bool("has_children") && d.Int("children_count") < 1 {
			return &ValidationError{Step: step, Reason: "children_count is required when has_children is set"}
		}
		if d.Bool("has_pets") && d.Int("pets_count") < 1 {
			return &ValidationError{Step: step, Reason: "pets_count is required when has_pets is set"}
		}
	case StepPreferences:
		if !contains(TransportModes, d.String("mode_of_transport")) {
			return &ValidationError{Step: step, Reason: "unknown mode_of_transport " + d.String("mode_of_transport")}
		}
		budget := d.Int("budget")
		if budget < BudgetMin || budget > BudgetMax {
			return &ValidationError{Step: step, Reason: fmt.Sprintf("budget must be between %d and %d", BudgetMin, BudgetMax)}
		}
		if budget%BudgetStep != 0 {
			return &ValidationError{Step: step, Reason: fmt.Sprintf("budget must be a multiple of %d", BudgetStep)}
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
