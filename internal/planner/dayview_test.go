package planner

import "testing"

func TestProjectItinerary_OneDayTwoActivities(t *testing.T) {
	days := []DayPlan{
		{
			Day:   1,
			Theme: "Old Town",
			Activities: []Activity{
				{Place: "Louvre", Time: "9:00 AM", Details: "Skip-the-line entry"},
				{Place: "Seine Cruise", Time: "7:30 PM"},
			},
		},
	}

	views := ProjectItinerary(days)
	if len(views) != 1 {
		t.Fatalf("day sections = %d, want 1", len(views))
	}
	v := views[0]
	if len(v.Activities) != 2 {
		t.Fatalf("activities = %d, want 2", len(v.Activities))
	}
	if v.Activities[0].Place != "Louvre" || v.Activities[1].Place != "Seine Cruise" {
		t.Error("activities must keep response order")
	}
	if v.Activities[0].Period != PeriodMorning {
		t.Errorf("9:00 AM period = %s, want morning", v.Activities[0].Period)
	}
	if v.Activities[1].Period != PeriodEvening {
		t.Errorf("7:30 PM period = %s, want evening", v.Activities[1].Period)
	}
	// Missing details project to the empty string, not a failure.
	if v.Activities[1].Details != "" {
		t.Errorf("details = %q, want empty", v.Activities[1].Details)
	}
}

func TestProjectItinerary_TolerantOfMissingFields(t *testing.T) {
	views := ProjectItinerary([]DayPlan{{Day: 2}})
	if len(views) != 1 {
		t.Fatalf("day sections = %d, want 1", len(views))
	}
	if views[0].Theme != "" {
		t.Errorf("theme = %q, want empty", views[0].Theme)
	}
	if len(views[0].Activities) != 0 {
		t.Errorf("activities = %d, want 0", len(views[0].Activities))
	}
}

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		label string
		want  Period
	}{
		{"9:00 AM", PeriodMorning},
		{"09:00", PeriodMorning},
		{"12:30 PM", PeriodEvening},
		{"19:00", PeriodEvening},
		{"7:30 pm", PeriodEvening},
		{"11:59 am", PeriodMorning},
		// Free-text labels fall back to the substring heuristic.
		{"early am walk", PeriodMorning},
		{"after dinner", PeriodEvening},
		{"", PeriodEvening},
	}
	for _, tt := range tests {
		if got := PeriodOf(tt.label); got != tt.want {
			t.Errorf("PeriodOf(%q) = %s, want %s", tt.label, got, tt.want)
		}
	}
}
