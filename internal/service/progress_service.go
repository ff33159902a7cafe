package service

import (
	"context"
	"errors"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/repository"
	"github.com/camica-bit/fitness-tracker-ai/pkg/logger"
)

// --- Error Definitions ---
var (
	ErrProgressNotFound = errors.New("no progress data found for this user")
	ErrDayNotFound      = errors.New("day not found in the current plan")
	ErrExerciseNotFound = errors.New("exercise index out of range")
)

// ProgressSummary is the progress endpoint's response payload.
type ProgressSummary struct {
	Progress          *domain.Progress `json:"progress"`
	OverallCompletion float64          `json:"overall_completion"`
	CurrentStreak     int              `json:"current_streak"`
}

// ProgressService owns completion tracking: exercise toggles, completion
// percentage, and the streak counter.
type ProgressService interface {
	GetProgress(ctx context.Context, userID string) (*ProgressSummary, error)
	ToggleExercise(ctx context.Context, userID, dayLabel string, exerciseIndex int, completed bool) (*ProgressSummary, error)
	UpdateStreak(ctx context.Context, userID string, incremented bool) (int, error)
}

// progressService implements ProgressService.
type progressService struct {
	plans    repository.PlanRepository
	progress repository.ProgressRepository
	locks    *userLocks
	log      *logger.Logger
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(
	plans repository.PlanRepository,
	progress repository.ProgressRepository,
	log *logger.Logger,
) ProgressService {
	return &progressService{
		plans:    plans,
		progress: progress,
		locks:    newUserLocks(),
		log:      log,
	}
}

func (s *progressService) GetProgress(ctx context.Context, userID string) (*ProgressSummary, error) {
	progress, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return summarize(progress), nil
}

// ToggleExercise flips the completion flag of one exercise on the user's
// current plan and recomputes that day's counters. Unknown day labels or
// out-of-range indices fail without mutating any state.
func (s *progressService) ToggleExercise(ctx context.Context, userID, dayLabel string, exerciseIndex int, completed bool) (*ProgressSummary, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	plan, err := s.plans.GetCurrent(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	day := plan.FindDay(dayLabel)
	if day == nil {
		return nil, ErrDayNotFound
	}
	if exerciseIndex < 0 || exerciseIndex >= len(day.Exercises) {
		return nil, ErrExerciseNotFound
	}

	day.Exercises[exerciseIndex].Completed = completed
	if err := s.plans.UpdateCurrent(ctx, plan); err != nil {
		return nil, err
	}

	progress, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Plans always reset progress on generation, but recover anyway.
			progress = domain.NewProgress(plan, nil)
		} else {
			return nil, err
		}
	}

	if entry := progress.FindDay(day.Day); entry != nil {
		entry.Total = len(day.Exercises)
		completedCount := 0
		for _, ex := range day.Exercises {
			if ex.Completed {
				completedCount++
			}
		}
		entry.Completed = completedCount
	}

	if err := s.progress.Save(ctx, progress); err != nil {
		return nil, err
	}
	return summarize(progress), nil
}

// UpdateStreak increments or resets the streak. There is no calendar
// awareness; the caller decides when a workout day happened.
func (s *progressService) UpdateStreak(ctx context.Context, userID string, incremented bool) (int, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	progress, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrProgressNotFound
		}
		return 0, err
	}

	if incremented {
		progress.CurrentStreak++
	} else {
		progress.CurrentStreak = 0
	}

	if err := s.progress.Save(ctx, progress); err != nil {
		return 0, err
	}
	return progress.CurrentStreak, nil
}

func summarize(progress *domain.Progress) *ProgressSummary {
	return &ProgressSummary{
		Progress:          progress,
		OverallCompletion: progress.CompletionPercent(),
		CurrentStreak:     progress.CurrentStreak,
	}
}
