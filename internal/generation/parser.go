package generation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
)

// rawPlan mirrors the JSON contract the model is instructed to produce.
// Pointers distinguish absent fields from zero values during validation.
type rawPlan struct {
	Days []rawDay `json:"days"`
}

type rawDay struct {
	Day       string        `json:"day"`
	Focus     string        `json:"focus"`
	Exercises []rawExercise `json:"exercises"`
}

type rawExercise struct {
	Name        string `json:"name"`
	Sets        *int   `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds *int   `json:"rest_seconds"`
	Notes       string `json:"notes"`
}

// extractJSON locates the first balanced top-level JSON object in text via
// brace-depth counting, tolerating surrounding prose and code fences. Braces
// inside string literals are skipped.
func extractJSON(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// ParsePlan extracts and validates the raw response text into a WorkoutPlan
// owned by the profile's user. Dynamic JSON from an untrusted upstream is
// never trusted structurally: every required field is checked explicitly, and
// the result is either a fully valid plan or a typed error.
//
// Equipment handling is a clamp policy: exercises whose inferred equipment
// falls outside the profile's set are dropped; a day left empty fails the
// whole plan with a constraint error.
func ParsePlan(raw string, profile *domain.Profile) (*domain.WorkoutPlan, error) {
	jsonText, ok := extractJSON(raw)
	if !ok {
		return nil, parseError("no JSON object found in response", raw, nil)
	}

	var decoded rawPlan
	if err := json.Unmarshal([]byte(jsonText), &decoded); err != nil {
		return nil, parseError("response is not decodable JSON", raw, err)
	}

	if len(decoded.Days) == 0 {
		return nil, parseError("response is missing the days array", raw, nil)
	}
	if len(decoded.Days) != profile.DaysPerWeek {
		return nil, parseError(
			fmt.Sprintf("expected %d days, got %d", profile.DaysPerWeek, len(decoded.Days)), raw, nil)
	}

	plan := &domain.WorkoutPlan{
		UserID:      profile.UserID,
		Days:        make([]domain.DayPlan, 0, len(decoded.Days)),
		GeneratedAt: time.Now().UTC(),
	}

	for i, day := range decoded.Days {
		if day.Day == "" {
			return nil, parseError(fmt.Sprintf("day %d is missing its label", i+1), raw, nil)
		}
		if len(day.Exercises) == 0 {
			return nil, parseError(fmt.Sprintf("day %q has no exercises", day.Day), raw, nil)
		}

		dayPlan := domain.DayPlan{
			Day:       day.Day,
			Focus:     day.Focus,
			Exercises: make([]domain.Exercise, 0, len(day.Exercises)),
		}

		for j, ex := range day.Exercises {
			if ex.Name == "" {
				return nil, parseError(fmt.Sprintf("day %q exercise %d is missing a name", day.Day, j+1), raw, nil)
			}
			if ex.Sets == nil || *ex.Sets <= 0 {
				return nil, parseError(fmt.Sprintf("exercise %q has invalid sets", ex.Name), raw, nil)
			}
			if ex.Reps == "" {
				return nil, parseError(fmt.Sprintf("exercise %q is missing reps", ex.Name), raw, nil)
			}
			if ex.RestSeconds == nil || *ex.RestSeconds < 0 {
				return nil, parseError(fmt.Sprintf("exercise %q has invalid rest_seconds", ex.Name), raw, nil)
			}

			if !profile.HasEquipment(domain.InferEquipment(ex.Name)) {
				// Clamp: drop the violating exercise rather than hard-fail.
				continue
			}

			dayPlan.Exercises = append(dayPlan.Exercises, domain.Exercise{
				Name:        ex.Name,
				Sets:        *ex.Sets,
				Reps:        ex.Reps,
				RestSeconds: *ex.RestSeconds,
				Notes:       ex.Notes,
			})
		}

		if len(dayPlan.Exercises) == 0 {
			return nil, constraintError(
				fmt.Sprintf("day %q has no exercises performable with the profile's equipment", day.Day))
		}
		plan.Days = append(plan.Days, dayPlan)
	}

	return plan, nil
}
