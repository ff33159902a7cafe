package domain

import (
	"strings"
	"time"
)

// Exercise is a single prescribed movement within a day.
type Exercise struct {
	Name        string `bson:"name" json:"name"`
	Sets        int    `bson:"sets" json:"sets"`
	Reps        string `bson:"reps" json:"reps"` // supports ranges like "8-10"
	RestSeconds int    `bson:"restSeconds" json:"rest_seconds"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
	Completed   bool   `bson:"completed" json:"completed"`
}

// DayPlan is one training day: a focus label and an ordered, non-empty
// sequence of exercises.
type DayPlan struct {
	Day       string     `bson:"day" json:"day"`     // e.g. "Day 1" or a weekday name
	Focus     string     `bson:"focus" json:"focus"` // muscle group / emphasis
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// WorkoutPlan is a generated weekly plan. Week numbers are positive and
// strictly increase per user across regenerations. Context describes the
// feedback event that produced this plan; empty for an initial generation.
type WorkoutPlan struct {
	UserID      string    `bson:"userId" json:"userId"`
	Week        int       `bson:"week" json:"week"`
	Days        []DayPlan `bson:"days" json:"days"`
	Context     string    `bson:"context,omitempty" json:"context,omitempty"`
	GeneratedAt time.Time `bson:"generatedAt" json:"generatedAt"`
}

// TotalExercises counts exercises across all days.
func (p *WorkoutPlan) TotalExercises() int {
	total := 0
	for _, day := range p.Days {
		total += len(day.Exercises)
	}
	return total
}

// CompletedExercises counts exercises whose completion flag is set.
func (p *WorkoutPlan) CompletedExercises() int {
	completed := 0
	for _, day := range p.Days {
		for _, ex := range day.Exercises {
			if ex.Completed {
				completed++
			}
		}
	}
	return completed
}

// FindDay returns the day with the given label (case-insensitive) or nil.
func (p *WorkoutPlan) FindDay(label string) *DayPlan {
	for i := range p.Days {
		if strings.EqualFold(p.Days[i].Day, label) {
			return &p.Days[i]
		}
	}
	return nil
}

// gymKeywords imply access to a full gym; dumbbellKeywords imply dumbbells.
// Anything else is assumed to be a bodyweight movement, which keeps the
// equipment check conservative for unknown exercise names.
var (
	gymKeywords = []string{
		"barbell", "machine", "cable", "smith", "lat pulldown", "leg press",
		"leg curl", "leg extension", "pec deck", "treadmill", "rower", "erg",
		"bench press", "deadlift", "rack", "sled", "ez bar", "ez-bar",
	}
	dumbbellKeywords = []string{"dumbbell", "db "}
)

// InferEquipment derives the equipment an exercise implies from its name.
func InferEquipment(exerciseName string) Equipment {
	name := strings.ToLower(exerciseName)
	for _, kw := range dumbbellKeywords {
		if strings.Contains(name, kw) {
			return EquipmentDumbbells
		}
	}
	for _, kw := range gymKeywords {
		if strings.Contains(name, kw) {
			return EquipmentGym
		}
	}
	return EquipmentBodyweight
}
