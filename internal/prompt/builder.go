// Package prompt builds the textual requests sent to the generative backend.
// All builders are pure: (profile, optional plan, optional feedback) → string.
package prompt

import (
	"fmt"
	"strings"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
)

// jsonSchema is the exact response shape the model must produce. The server
// injects userId/week/generatedAt itself, so the model is only asked for days.
const jsonSchema = `{
  "days": [
    {
      "day": string,
      "focus": string,
      "exercises": [
        {
          "name": string,
          "sets": number,
          "reps": string,
          "rest_seconds": number,
          "notes": string
        }
      ]
    }
  ]
}`

// BuildInitialPrompt produces the generation request for a profile with no
// prior plan. The profile must already satisfy its invariants.
func BuildInitialPrompt(profile *domain.Profile) string {
	var b strings.Builder

	writeContract(&b)
	writeProfile(&b, profile)

	b.WriteString("Training rules:\n")
	fmt.Fprintf(&b, "1. Generate EXACTLY %d workout days, labeled \"Day 1\" through \"Day %d\". Never more, never fewer.\n",
		profile.DaysPerWeek, profile.DaysPerWeek)
	fmt.Fprintf(&b, "2. Every exercise must be performable with ONLY this equipment: %s. Nothing else.\n",
		equipmentList(profile))
	fmt.Fprintf(&b, "3. Each day must fit within %d minutes including rest.\n", profile.SessionMinutes)
	b.WriteString("4. " + goalDirective(profile.Goal) + "\n")
	b.WriteString("5. " + safetyDirective(profile.Experience) + "\n")
	b.WriteString("6. Every day must contain at least one exercise. Use realistic, named exercises.\n")

	return b.String()
}

// BuildRegenerationPrompt produces the request that transforms a previous
// plan according to the feedback kind, keeping each day's focus intact.
func BuildRegenerationPrompt(profile *domain.Profile, previous *domain.WorkoutPlan, feedback domain.FeedbackType) string {
	var b strings.Builder

	writeContract(&b)
	writeProfile(&b, profile)

	b.WriteString("Previous plan (week ")
	fmt.Fprintf(&b, "%d):\n", previous.Week)
	writePlanSummary(&b, previous)
	b.WriteString("\n")

	b.WriteString("Adjustment request:\n")
	b.WriteString(feedbackDirective(feedback) + "\n\n")

	b.WriteString("Training rules:\n")
	fmt.Fprintf(&b, "1. Generate EXACTLY %d workout days, labeled \"Day 1\" through \"Day %d\".\n",
		profile.DaysPerWeek, profile.DaysPerWeek)
	fmt.Fprintf(&b, "2. Every exercise must use ONLY this equipment: %s.\n", equipmentList(profile))
	fmt.Fprintf(&b, "3. Each day must fit within %d minutes including rest.\n", profile.SessionMinutes)
	b.WriteString("4. Keep each day's focus the same as the previous plan.\n")
	b.WriteString("5. Every day must contain at least one exercise.\n")

	return b.String()
}

// StrictRetrySuffix is appended to a prompt when the previous response could
// not be parsed. Used for the single parse-failure retry.
func StrictRetrySuffix() string {
	return "\nIMPORTANT: your previous response was not valid JSON. " +
		"Respond with the JSON object ONLY. No markdown fences, no commentary, " +
		"no text before or after the opening and closing braces."
}

func writeContract(b *strings.Builder) {
	b.WriteString("You are an expert fitness coach AI.\n\n")
	b.WriteString("You MUST return ONLY valid JSON. No explanations, no markdown, no text outside the JSON object.\n")
	b.WriteString("The JSON MUST strictly follow this schema:\n\n")
	b.WriteString(jsonSchema)
	b.WriteString("\n\n")
}

func writeProfile(b *strings.Builder, profile *domain.Profile) {
	b.WriteString("User profile:\n")
	fmt.Fprintf(b, "- Age: %d\n", profile.Age)
	if profile.Gender != "" {
		fmt.Fprintf(b, "- Gender: %s\n", profile.Gender)
	}
	if profile.HeightCm > 0 {
		fmt.Fprintf(b, "- Height: %d cm\n", profile.HeightCm)
	}
	if profile.WeightKg > 0 {
		fmt.Fprintf(b, "- Weight: %.1f kg\n", profile.WeightKg)
	}
	fmt.Fprintf(b, "- Goal: %s\n", profile.Goal)
	fmt.Fprintf(b, "- Experience: %s\n", profile.Experience)
	fmt.Fprintf(b, "- Equipment: %s\n", equipmentList(profile))
	fmt.Fprintf(b, "- Session length: %d minutes\n", profile.SessionMinutes)
	fmt.Fprintf(b, "- Training days per week: %d\n\n", profile.DaysPerWeek)
}

// writePlanSummary serializes day/exercise/sets/reps/rest so the model has
// the full previous context without the completion flags.
func writePlanSummary(b *strings.Builder, plan *domain.WorkoutPlan) {
	for _, day := range plan.Days {
		fmt.Fprintf(b, "%s (%s):\n", day.Day, day.Focus)
		for _, ex := range day.Exercises {
			fmt.Fprintf(b, "  - %s: %d sets x %s reps, %ds rest\n", ex.Name, ex.Sets, ex.Reps, ex.RestSeconds)
		}
	}
}

func goalDirective(goal domain.FitnessGoal) string {
	switch goal {
	case domain.GoalFatLoss:
		return "Goal is fat loss: favor compound movements with moderate to high rep ranges and short rest."
	case domain.GoalMuscleGain:
		return "Goal is muscle gain: apply progressive overload, moderate rep ranges, and longer rest between sets."
	default:
		return "Goal is general fitness: balanced full-body programming across the week."
	}
}

func safetyDirective(level domain.ExperienceLevel) string {
	switch level {
	case domain.ExperienceBeginner:
		return "The user is a beginner: every exercise's notes MUST include form cues and injury-prevention caveats."
	case domain.ExperienceIntermediate:
		return "The user is intermediate: include form cues where technique is non-obvious."
	default:
		return "The user is advanced: notes may focus on intensity techniques."
	}
}

func feedbackDirective(feedback domain.FeedbackType) string {
	switch feedback {
	case domain.FeedbackTooEasy:
		return "The user found the previous plan TOO EASY. Increase sets or reps, reduce rest periods, " +
			"and substitute harder variations where appropriate. Keep the same focus areas per day."
	case domain.FeedbackTooHard:
		return "The user found the previous plan TOO HARD. Decrease sets and reps, increase rest periods " +
			"(never below the previous rest), and substitute easier variations. Keep the same focus areas per day."
	case domain.FeedbackMissedDay:
		return "The user missed a training day. Redistribute and compress the remaining weekly training " +
			"stimulus across the available days without exceeding the session length, preserving total weekly volume intent."
	default:
		return ""
	}
}

func equipmentList(profile *domain.Profile) string {
	parts := make([]string, 0, len(profile.Equipment))
	for _, eq := range profile.Equipment {
		parts = append(parts, string(eq))
	}
	return strings.Join(parts, ", ")
}
