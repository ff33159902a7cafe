// Package engine drives the workout plan lifecycle: initial generation and
// feedback-driven regeneration, modeled as a small closed state machine per
// request (see state.go).
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/generation"
	"github.com/camica-bit/fitness-tracker-ai/internal/prompt"
	"github.com/camica-bit/fitness-tracker-ai/internal/repository"
	"github.com/camica-bit/fitness-tracker-ai/internal/storage"
	"github.com/camica-bit/fitness-tracker-ai/pkg/logger"
)

// --- Error Definitions ---
var (
	// ErrBusy: a generation for this user is already in flight. Concurrent
	// requests are rejected, not queued.
	ErrBusy = errors.New("a plan generation is already in progress for this user")
	// ErrNoPreviousPlan: regeneration feedback always needs a plan to adjust.
	ErrNoPreviousPlan = errors.New("no previous plan to regenerate from")
)

// Config bounds the generation call and its retry behavior.
type Config struct {
	Timeout         time.Duration // per-attempt deadline for the upstream call
	UpstreamRetries int           // extra attempts after an upstream failure
	Backoff         time.Duration // linear backoff base between retries
}

// DefaultConfig returns the bounds used when none are configured.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		UpstreamRetries: 2,
		Backoff:         500 * time.Millisecond,
	}
}

// Orchestrator coordinates prompt building, generation, validation, and
// persistence. Per-user mutable state is protected by an in-flight guard:
// a second request for the same user is rejected with ErrBusy.
type Orchestrator struct {
	generator generation.Generator
	plans     repository.PlanRepository
	progress  repository.ProgressRepository
	archive   storage.ResponseArchive // optional
	log       *logger.Logger
	cfg       Config

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewOrchestrator wires the engine. archive may be nil to disable raw
// response archiving.
func NewOrchestrator(
	generator generation.Generator,
	plans repository.PlanRepository,
	progress repository.ProgressRepository,
	archive storage.ResponseArchive,
	log *logger.Logger,
	cfg Config,
) *Orchestrator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultConfig().Backoff
	}
	return &Orchestrator{
		generator: generator,
		plans:     plans,
		progress:  progress,
		archive:   archive,
		log:       log,
		cfg:       cfg,
		inFlight:  map[string]struct{}{},
	}
}

// Generate runs an initial generation for the profile. Week numbering
// continues the user's history so an explicit new-plan request supersedes
// the old cycle; the first ever plan is week 1.
func (o *Orchestrator) Generate(ctx context.Context, profile *domain.Profile) (*Run, error) {
	run := newRun(profile.UserID, "")

	if err := profile.Validate(); err != nil {
		return run.fail(err), err
	}
	if !o.acquire(profile.UserID) {
		return run.fail(ErrBusy), ErrBusy
	}
	defer o.release(profile.UserID)

	week := 1
	if prev, err := o.plans.GetCurrent(ctx, profile.UserID); err == nil {
		week = prev.Week + 1
	} else if !errors.Is(err, repository.ErrNotFound) {
		return run.fail(err), err
	}

	promptText := prompt.BuildInitialPrompt(profile)
	run.advance(StatePromptBuilt)

	return o.finish(ctx, run, profile, promptText, week, "")
}

// Regenerate transforms the user's current plan according to the feedback
// kind. All feedback kinds require a previous plan.
func (o *Orchestrator) Regenerate(ctx context.Context, profile *domain.Profile, feedback domain.FeedbackType) (*Run, error) {
	run := newRun(profile.UserID, feedback)

	if !feedback.Valid() {
		err := domain.ValidationError(fmt.Sprintf("unknown feedback type %q", feedback))
		return run.fail(err), err
	}
	if !o.acquire(profile.UserID) {
		return run.fail(ErrBusy), ErrBusy
	}
	defer o.release(profile.UserID)

	previous, err := o.plans.GetCurrent(ctx, profile.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return run.fail(ErrNoPreviousPlan), ErrNoPreviousPlan
		}
		return run.fail(err), err
	}

	promptText := prompt.BuildRegenerationPrompt(profile, previous, feedback)
	run.advance(StatePromptBuilt)

	return o.finish(ctx, run, profile, promptText, previous.Week+1, feedback.Description())
}

// finish carries a run through AwaitingGeneration → Validated → Persisted.
func (o *Orchestrator) finish(ctx context.Context, run *Run, profile *domain.Profile, promptText string, week int, planContext string) (*Run, error) {
	run.advance(StateAwaitingGeneration)
	plan, err := o.callGenerator(ctx, profile, promptText)
	if err != nil {
		return run.fail(err), err
	}
	// Day count and equipment constraints were enforced during parsing.
	run.advance(StateValidated)

	plan.Week = week
	plan.Context = planContext

	if err := o.plans.Append(ctx, plan); err != nil {
		return run.fail(err), err
	}
	if err := o.resetProgress(ctx, plan, run.Feedback); err != nil {
		return run.fail(err), err
	}

	o.log.Infow("plan persisted", "userId", plan.UserID, "week", plan.Week, "feedback", string(run.Feedback))
	return run.succeed(plan), nil
}

// callGenerator runs the upstream call with bounded retries: upstream
// failures get cfg.UpstreamRetries extra attempts with linear backoff, a
// parse failure gets exactly one retry with a stricter re-prompt, and
// configuration or constraint errors are surfaced immediately.
func (o *Orchestrator) callGenerator(ctx context.Context, profile *domain.Profile, promptText string) (*domain.WorkoutPlan, error) {
	strictRetried := false
	attemptsLeft := o.cfg.UpstreamRetries

	for attempt := 1; ; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
		plan, raw, err := o.generator.Generate(attemptCtx, profile, promptText)
		cancel()

		o.archiveRaw(ctx, profile.UserID, attempt, raw)

		if err == nil {
			return plan, nil
		}

		switch {
		case generation.IsKind(err, generation.KindUpstream) && attemptsLeft > 0:
			attemptsLeft--
			o.log.Warnw("upstream generation failure, retrying",
				"userId", profile.UserID, "attempt", attempt, "error", err)
			select {
			case <-time.After(o.cfg.Backoff * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, err
			}
		case generation.IsKind(err, generation.KindParse) && !strictRetried:
			strictRetried = true
			promptText += prompt.StrictRetrySuffix()
			o.log.Warnw("unparseable generation response, retrying with strict prompt",
				"userId", profile.UserID, "attempt", attempt)
		default:
			return nil, err
		}
	}
}

// archiveRaw stores the raw response for diagnostics. Best-effort only.
func (o *Orchestrator) archiveRaw(ctx context.Context, userID string, attempt int, raw string) {
	if o.archive == nil || raw == "" {
		return
	}
	key := fmt.Sprintf("responses/%s/%d-%d.txt", userID, time.Now().UTC().UnixNano(), attempt)
	if err := o.archive.ArchiveResponse(ctx, key, raw); err != nil {
		o.log.Warnw("failed to archive raw response", "userId", userID, "key", key, "error", err)
	}
}

// resetProgress creates the progress record for the new week. The streak
// carries across regenerations; it resets only once missed_day feedback has
// run MissedDayStreakThreshold times consecutively.
func (o *Orchestrator) resetProgress(ctx context.Context, plan *domain.WorkoutPlan, feedback domain.FeedbackType) error {
	var prev *domain.Progress
	if existing, err := o.progress.Get(ctx, plan.UserID); err == nil {
		prev = existing
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	next := domain.NewProgress(plan, prev)
	if feedback == domain.FeedbackMissedDay {
		next.MissedDayRuns++
		if next.MissedDayRuns >= domain.MissedDayStreakThreshold {
			next.CurrentStreak = 0
			next.MissedDayRuns = 0
		}
	} else {
		next.MissedDayRuns = 0
	}

	return o.progress.Save(ctx, next)
}

func (o *Orchestrator) acquire(userID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, busy := o.inFlight[userID]; busy {
		return false
	}
	o.inFlight[userID] = struct{}{}
	return true
}

func (o *Orchestrator) release(userID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inFlight, userID)
}
