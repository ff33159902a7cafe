package engine

import "github.com/camica-bit/fitness-tracker-ai/internal/domain"

// State of a generation run. Every run walks
// Idle → PromptBuilt → AwaitingGeneration → Validated → Persisted,
// or terminates in Failed at whichever stage broke.
type State string

const (
	StateIdle               State = "idle"
	StatePromptBuilt        State = "prompt_built"
	StateAwaitingGeneration State = "awaiting_generation"
	StateValidated          State = "validated"
	StatePersisted          State = "persisted"
	StateFailed             State = "failed"
)

// Run is the tagged-state value for one generation or regeneration request.
// On success State is StatePersisted and Plan holds the stored plan; on
// failure State is StateFailed and Err carries the specific failure kind.
type Run struct {
	UserID   string
	Feedback domain.FeedbackType // empty for initial generation
	State    State
	Plan     *domain.WorkoutPlan
	Err      error
}

func newRun(userID string, feedback domain.FeedbackType) *Run {
	return &Run{UserID: userID, Feedback: feedback, State: StateIdle}
}

func (r *Run) advance(next State) {
	r.State = next
}

func (r *Run) fail(err error) *Run {
	r.State = StateFailed
	r.Err = err
	return r
}

func (r *Run) succeed(plan *domain.WorkoutPlan) *Run {
	r.State = StatePersisted
	r.Plan = plan
	return r
}
