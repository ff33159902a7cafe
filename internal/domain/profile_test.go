package domain

import (
	"errors"
	"testing"
)

func validProfile() *Profile {
	return &Profile{
		UserID:         "user-1",
		Age:            28,
		Goal:           GoalFatLoss,
		Experience:     ExperienceBeginner,
		Equipment:      []Equipment{EquipmentBodyweight, EquipmentDumbbells},
		SessionMinutes: 45,
		DaysPerWeek:    4,
	}
}

func TestProfileValidateAcceptsValidProfile(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}
}

func TestProfileValidateRejectsOutOfRangeFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"missing user id", func(p *Profile) { p.UserID = "" }},
		{"age too low", func(p *Profile) { p.Age = 12 }},
		{"age too high", func(p *Profile) { p.Age = 121 }},
		{"unknown goal", func(p *Profile) { p.Goal = "get_swole" }},
		{"unknown experience", func(p *Profile) { p.Experience = "expert" }},
		{"empty equipment", func(p *Profile) { p.Equipment = nil }},
		{"unknown equipment", func(p *Profile) { p.Equipment = []Equipment{"kettlebells"} }},
		{"session too short", func(p *Profile) { p.SessionMinutes = 10 }},
		{"session too long", func(p *Profile) { p.SessionMinutes = 200 }},
		{"too few days", func(p *Profile) { p.DaysPerWeek = 2 }},
		{"too many days", func(p *Profile) { p.DaysPerWeek = 7 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := validProfile()
			tc.mutate(profile)

			err := profile.Validate()
			if err == nil {
				t.Fatal("expected a validation error, got nil")
			}
			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestHasEquipment(t *testing.T) {
	profile := validProfile()
	if !profile.HasEquipment(EquipmentDumbbells) {
		t.Fatal("expected dumbbells to be available")
	}
	if profile.HasEquipment(EquipmentGym) {
		t.Fatal("expected gym to be unavailable")
	}
}
