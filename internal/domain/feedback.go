package domain

// FeedbackType selects the regeneration adjustment strategy.
type FeedbackType string

const (
	FeedbackTooEasy   FeedbackType = "too_easy"
	FeedbackTooHard   FeedbackType = "too_hard"
	FeedbackMissedDay FeedbackType = "missed_day"
)

// Valid reports whether the feedback type is one of the known kinds.
func (f FeedbackType) Valid() bool {
	switch f {
	case FeedbackTooEasy, FeedbackTooHard, FeedbackMissedDay:
		return true
	}
	return false
}

// Description returns the human-readable context stored on a regenerated plan.
func (f FeedbackType) Description() string {
	switch f {
	case FeedbackTooEasy:
		return "Regenerated after 'too easy' feedback: increased intensity, same focus areas"
	case FeedbackTooHard:
		return "Regenerated after 'too hard' feedback: reduced intensity, same focus areas"
	case FeedbackMissedDay:
		return "Regenerated after a missed day: weekly volume redistributed across available days"
	default:
		return string(f)
	}
}
