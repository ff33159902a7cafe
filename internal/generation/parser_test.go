package generation

import (
	"errors"
	"testing"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		UserID:         "user-1",
		Age:            28,
		Goal:           domain.GoalFatLoss,
		Experience:     domain.ExperienceBeginner,
		Equipment:      []domain.Equipment{domain.EquipmentBodyweight, domain.EquipmentDumbbells},
		SessionMinutes: 45,
		DaysPerWeek:    2,
	}
}

const validResponse = `{
  "days": [
    {"day": "Day 1", "focus": "Upper Body", "exercises": [
      {"name": "Push-up", "sets": 3, "reps": "10-12", "rest_seconds": 60, "notes": "Keep core tight"},
      {"name": "Dumbbell Row", "sets": 3, "reps": "8-10", "rest_seconds": 90}
    ]},
    {"day": "Day 2", "focus": "Lower Body", "exercises": [
      {"name": "Bodyweight Squat", "sets": 4, "reps": "12-15", "rest_seconds": 45}
    ]}
  ]
}`

func TestParsePlanValid(t *testing.T) {
	plan, err := ParsePlan(validResponse, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(plan.Days))
	}
	if plan.UserID != "user-1" {
		t.Fatalf("user id = %q, want user-1", plan.UserID)
	}
	if plan.Days[0].Exercises[0].Notes != "Keep core tight" {
		t.Fatal("notes not carried through")
	}
	if plan.Days[0].Exercises[0].Completed {
		t.Fatal("completion flag should default to false")
	}
}

func TestParsePlanToleratesFencesAndProse(t *testing.T) {
	wrapped := "Sure! Here is your plan:\n```json\n" + validResponse + "\n```\nEnjoy your training!"

	plan, err := ParsePlan(wrapped, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(plan.Days))
	}
}

func TestParsePlanHandlesBracesInsideStrings(t *testing.T) {
	raw := `{"days": [
    {"day": "Day 1", "focus": "Core {and} Mobility", "exercises": [
      {"name": "Plank", "sets": 3, "reps": "30s", "rest_seconds": 30, "notes": "hold {steady}"}
    ]},
    {"day": "Day 2", "focus": "Legs", "exercises": [
      {"name": "Squat", "sets": 3, "reps": "12", "rest_seconds": 60}
    ]}
  ]}`

	if _, err := ParsePlan(raw, testProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParsePlanNonJSONIsParseFailure(t *testing.T) {
	raw := "I could not generate a plan today, sorry."

	_, err := ParsePlan(raw, testProfile())
	if !IsKind(err, KindParse) {
		t.Fatalf("expected parse error, got %v", err)
	}

	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Raw != raw {
		t.Fatal("parse error should carry the raw response for diagnostics")
	}
}

func TestParsePlanWrongDayCount(t *testing.T) {
	profile := testProfile()
	profile.DaysPerWeek = 3

	_, err := ParsePlan(validResponse, profile)
	if !IsKind(err, KindParse) {
		t.Fatalf("expected parse error for day-count mismatch, got %v", err)
	}
}

func TestParsePlanMissingFields(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing days", `{"week": 1}`},
		{"missing exercise name", `{"days": [
			{"day": "Day 1", "focus": "A", "exercises": [{"sets": 3, "reps": "10", "rest_seconds": 60}]},
			{"day": "Day 2", "focus": "B", "exercises": [{"name": "Squat", "sets": 3, "reps": "10", "rest_seconds": 60}]}
		]}`},
		{"zero sets", `{"days": [
			{"day": "Day 1", "focus": "A", "exercises": [{"name": "Push-up", "sets": 0, "reps": "10", "rest_seconds": 60}]},
			{"day": "Day 2", "focus": "B", "exercises": [{"name": "Squat", "sets": 3, "reps": "10", "rest_seconds": 60}]}
		]}`},
		{"missing rest", `{"days": [
			{"day": "Day 1", "focus": "A", "exercises": [{"name": "Push-up", "sets": 3, "reps": "10"}]},
			{"day": "Day 2", "focus": "B", "exercises": [{"name": "Squat", "sets": 3, "reps": "10", "rest_seconds": 60}]}
		]}`},
		{"empty day", `{"days": [
			{"day": "Day 1", "focus": "A", "exercises": []},
			{"day": "Day 2", "focus": "B", "exercises": [{"name": "Squat", "sets": 3, "reps": "10", "rest_seconds": 60}]}
		]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePlan(tc.raw, testProfile()); !IsKind(err, KindParse) {
				t.Fatalf("expected parse error, got %v", err)
			}
		})
	}
}

func TestParsePlanClampsDisallowedEquipment(t *testing.T) {
	raw := `{"days": [
    {"day": "Day 1", "focus": "Upper", "exercises": [
      {"name": "Barbell Bench Press", "sets": 3, "reps": "8", "rest_seconds": 90},
      {"name": "Push-up", "sets": 3, "reps": "12", "rest_seconds": 60}
    ]},
    {"day": "Day 2", "focus": "Lower", "exercises": [
      {"name": "Bodyweight Squat", "sets": 3, "reps": "15", "rest_seconds": 45}
    ]}
  ]}`

	plan, err := ParsePlan(raw, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Days[0].Exercises) != 1 || plan.Days[0].Exercises[0].Name != "Push-up" {
		t.Fatalf("expected barbell exercise to be dropped, got %+v", plan.Days[0].Exercises)
	}
}

func TestParsePlanConstraintViolationWhenDayEmpties(t *testing.T) {
	raw := `{"days": [
    {"day": "Day 1", "focus": "Upper", "exercises": [
      {"name": "Barbell Bench Press", "sets": 3, "reps": "8", "rest_seconds": 90}
    ]},
    {"day": "Day 2", "focus": "Lower", "exercises": [
      {"name": "Bodyweight Squat", "sets": 3, "reps": "15", "rest_seconds": 45}
    ]}
  ]}`

	_, err := ParsePlan(raw, testProfile())
	if !IsKind(err, KindConstraint) {
		t.Fatalf("expected constraint error, got %v", err)
	}
}
