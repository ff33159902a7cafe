package domain

import (
	"fmt"
	"time"
)

// FitnessGoal type for the training emphasis a plan is generated around.
type FitnessGoal string

const (
	GoalFatLoss        FitnessGoal = "fat_loss"
	GoalMuscleGain     FitnessGoal = "muscle_gain"
	GoalGeneralFitness FitnessGoal = "general_fitness"
)

// ExperienceLevel type for the safety tier applied during generation.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Equipment the user has access to. Plans must never prescribe anything
// outside the profile's equipment set.
type Equipment string

const (
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentDumbbells  Equipment = "dumbbells"
	EquipmentGym        Equipment = "gym"
)

// Profile bounds enforced by Validate.
const (
	MinAge             = 13
	MaxAge             = 120
	MinSessionMinutes  = 15
	MaxSessionMinutes  = 180
	MinDaysPerWeek     = 3
	MaxDaysPerWeek     = 6
)

// ValidationError marks malformed or out-of-range input. Never retried;
// surfaced to the caller immediately.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// Profile represents a user's validated fitness attributes. Once a plan has
// been generated against it, the profile is treated as immutable; saving a
// new profile supersedes it for future generations.
type Profile struct {
	UserID          string          `bson:"_id" json:"userId"`
	Age             int             `bson:"age" json:"age"`
	Gender          string          `bson:"gender,omitempty" json:"gender,omitempty"`
	HeightCm        int             `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg        float64         `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	Goal            FitnessGoal     `bson:"goal" json:"goal"`
	Experience      ExperienceLevel `bson:"experience" json:"experience"`
	Equipment       []Equipment     `bson:"equipment" json:"equipment"`
	SessionMinutes  int             `bson:"sessionMinutes" json:"sessionMinutes"`
	DaysPerWeek     int             `bson:"daysPerWeek" json:"daysPerWeek"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the profile against the data model invariants.
func (p *Profile) Validate() error {
	if p.UserID == "" {
		return ValidationError("user id is required")
	}
	if p.Age < MinAge || p.Age > MaxAge {
		return ValidationError(fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge))
	}
	switch p.Goal {
	case GoalFatLoss, GoalMuscleGain, GoalGeneralFitness:
	default:
		return ValidationError(fmt.Sprintf("unknown fitness goal %q", p.Goal))
	}
	switch p.Experience {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
	default:
		return ValidationError(fmt.Sprintf("unknown experience level %q", p.Experience))
	}
	if len(p.Equipment) == 0 {
		return ValidationError("equipment set must not be empty")
	}
	for _, eq := range p.Equipment {
		switch eq {
		case EquipmentBodyweight, EquipmentDumbbells, EquipmentGym:
		default:
			return ValidationError(fmt.Sprintf("unknown equipment %q", eq))
		}
	}
	if p.SessionMinutes < MinSessionMinutes || p.SessionMinutes > MaxSessionMinutes {
		return ValidationError(fmt.Sprintf("session duration must be between %d and %d minutes", MinSessionMinutes, MaxSessionMinutes))
	}
	if p.DaysPerWeek < MinDaysPerWeek || p.DaysPerWeek > MaxDaysPerWeek {
		return ValidationError(fmt.Sprintf("days per week must be between %d and %d", MinDaysPerWeek, MaxDaysPerWeek))
	}
	return nil
}

// HasEquipment reports whether eq is part of the profile's equipment set.
func (p *Profile) HasEquipment(eq Equipment) bool {
	for _, have := range p.Equipment {
		if have == eq {
			return true
		}
	}
	return false
}
