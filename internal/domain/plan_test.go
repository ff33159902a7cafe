package domain

import "testing"

func TestInferEquipment(t *testing.T) {
	cases := []struct {
		exercise string
		want     Equipment
	}{
		{"Push-up", EquipmentBodyweight},
		{"Bodyweight Squat", EquipmentBodyweight},
		{"Dumbbell Bench Press", EquipmentDumbbells},
		{"Incline DB Curl", EquipmentDumbbells},
		{"Barbell Back Squat", EquipmentGym},
		{"Lat Pulldown", EquipmentGym},
		{"Cable Row", EquipmentGym},
		{"Leg Press", EquipmentGym},
		{"Plank", EquipmentBodyweight},
	}

	for _, tc := range cases {
		if got := InferEquipment(tc.exercise); got != tc.want {
			t.Errorf("InferEquipment(%q) = %q, want %q", tc.exercise, got, tc.want)
		}
	}
}

func TestWorkoutPlanCounts(t *testing.T) {
	plan := &WorkoutPlan{
		Days: []DayPlan{
			{Day: "Day 1", Exercises: []Exercise{{Name: "Push-up", Completed: true}, {Name: "Plank"}}},
			{Day: "Day 2", Exercises: []Exercise{{Name: "Squat"}}},
		},
	}

	if got := plan.TotalExercises(); got != 3 {
		t.Fatalf("TotalExercises = %d, want 3", got)
	}
	if got := plan.CompletedExercises(); got != 1 {
		t.Fatalf("CompletedExercises = %d, want 1", got)
	}
}

func TestFindDayIsCaseInsensitive(t *testing.T) {
	plan := &WorkoutPlan{Days: []DayPlan{{Day: "Day 1"}, {Day: "Day 2"}}}

	if plan.FindDay("day 2") == nil {
		t.Fatal("expected to find 'day 2'")
	}
	if plan.FindDay("Day 3") != nil {
		t.Fatal("did not expect to find 'Day 3'")
	}
}
