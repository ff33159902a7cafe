package domain

import "strings"

// DayProgress tracks completion counts for a single day of the current plan.
// Completed never exceeds Total.
type DayProgress struct {
	Day       string `bson:"day" json:"day"`
	Total     int    `bson:"total" json:"total_exercises"`
	Completed int    `bson:"completed" json:"exercises_completed"`
}

// Progress is per-plan completion tracking for a user. It is created (or
// reset) whenever a new plan is generated for that week and mutated on each
// exercise-completion toggle. The streak is only changed through an explicit
// update, never inferred from wall-clock time.
//
// MissedDayRuns counts consecutive missed_day regenerations; the streak is
// reset once the run reaches MissedDayStreakThreshold.
type Progress struct {
	UserID        string        `bson:"_id" json:"userId"`
	Week          int           `bson:"week" json:"week"`
	Days          []DayProgress `bson:"days" json:"days"`
	CurrentStreak int           `bson:"currentStreak" json:"current_streak"`
	MissedDayRuns int           `bson:"missedDayRuns" json:"-"`
}

// MissedDayStreakThreshold is the number of consecutive missed_day
// regenerations after which the streak resets to zero.
const MissedDayStreakThreshold = 2

// NewProgress builds a fresh progress record for a plan, carrying the streak
// and missed-day run over from the previous record when one exists.
func NewProgress(plan *WorkoutPlan, prev *Progress) *Progress {
	progress := &Progress{
		UserID: plan.UserID,
		Week:   plan.Week,
		Days:   make([]DayProgress, 0, len(plan.Days)),
	}
	if prev != nil {
		progress.CurrentStreak = prev.CurrentStreak
		progress.MissedDayRuns = prev.MissedDayRuns
	}
	for _, day := range plan.Days {
		progress.Days = append(progress.Days, DayProgress{
			Day:   day.Day,
			Total: len(day.Exercises),
		})
	}
	return progress
}

// CompletionPercent returns completed/total across all days as a percentage,
// 0 when the plan has no exercises.
func (p *Progress) CompletionPercent() float64 {
	total, completed := 0, 0
	for _, day := range p.Days {
		total += day.Total
		completed += day.Completed
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// FindDay returns the progress entry for the given day label or nil.
func (p *Progress) FindDay(label string) *DayProgress {
	for i := range p.Days {
		if strings.EqualFold(p.Days[i].Day, label) {
			return &p.Days[i]
		}
	}
	return nil
}
