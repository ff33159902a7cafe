package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/engine"
	"github.com/camica-bit/fitness-tracker-ai/internal/repository"
	"github.com/camica-bit/fitness-tracker-ai/pkg/logger"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound = errors.New("profile not found for this user")
	ErrPlanNotFound    = errors.New("no workout plan found for this user")
)

// UserStats aggregates everything the stats endpoint reports for a user.
type UserStats struct {
	Profile       *domain.Profile     `json:"profile"`
	Progress      *domain.Progress    `json:"progress,omitempty"`
	CurrentPlan   *domain.WorkoutPlan `json:"currentPlan,omitempty"`
	PlansCount    int                 `json:"plansCount"`
	Completion    float64             `json:"weeklyCompletion"`
	CurrentStreak int                 `json:"currentStreak"`
}

// WorkoutService owns the plan lifecycle: profile CRUD, generation,
// regeneration, history, and user deletion.
type WorkoutService interface {
	SaveProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	Generate(ctx context.Context, profile *domain.Profile) (*domain.WorkoutPlan, error)
	Regenerate(ctx context.Context, userID string, feedback domain.FeedbackType) (*domain.WorkoutPlan, error)

	GetCurrentPlan(ctx context.Context, userID string) (*domain.WorkoutPlan, error)
	GetPlanHistory(ctx context.Context, userID string) ([]domain.WorkoutPlan, error)
	GetStats(ctx context.Context, userID string) (*UserStats, error)

	DeleteUser(ctx context.Context, userID string) error
}

// workoutService implements WorkoutService.
type workoutService struct {
	profiles     repository.ProfileRepository
	plans        repository.PlanRepository
	progress     repository.ProgressRepository
	orchestrator *engine.Orchestrator
	locks        *userLocks
	log          *logger.Logger
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	profiles repository.ProfileRepository,
	plans repository.PlanRepository,
	progress repository.ProgressRepository,
	orchestrator *engine.Orchestrator,
	log *logger.Logger,
) WorkoutService {
	return &workoutService{
		profiles:     profiles,
		plans:        plans,
		progress:     progress,
		orchestrator: orchestrator,
		locks:        newUserLocks(),
		log:          log,
	}
}

// SaveProfile validates and persists a profile, minting a user id when the
// caller did not supply one.
func (s *workoutService) SaveProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile.UserID == "" {
		profile.UserID = uuid.NewString()
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(profile.UserID)
	defer unlock()

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *workoutService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Generate saves the profile and produces an initial plan for it.
func (s *workoutService) Generate(ctx context.Context, profile *domain.Profile) (*domain.WorkoutPlan, error) {
	saved, err := s.SaveProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	run, err := s.orchestrator.Generate(ctx, saved)
	if err != nil {
		return nil, err
	}
	return run.Plan, nil
}

// Regenerate applies feedback to the user's current plan.
func (s *workoutService) Regenerate(ctx context.Context, userID string, feedback domain.FeedbackType) (*domain.WorkoutPlan, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	run, err := s.orchestrator.Regenerate(ctx, profile, feedback)
	if err != nil {
		return nil, err
	}
	return run.Plan, nil
}

func (s *workoutService) GetCurrentPlan(ctx context.Context, userID string) (*domain.WorkoutPlan, error) {
	plan, err := s.plans.GetCurrent(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *workoutService) GetPlanHistory(ctx context.Context, userID string) ([]domain.WorkoutPlan, error) {
	return s.plans.GetHistory(ctx, userID)
}

// GetStats aggregates profile, current plan, progress, and counters.
func (s *workoutService) GetStats(ctx context.Context, userID string) (*UserStats, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{Profile: profile}

	if plan, err := s.plans.GetCurrent(ctx, userID); err == nil {
		stats.CurrentPlan = plan
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	history, err := s.plans.GetHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.PlansCount = len(history)

	if progress, err := s.progress.Get(ctx, userID); err == nil {
		stats.Progress = progress
		stats.Completion = progress.CompletionPercent()
		stats.CurrentStreak = progress.CurrentStreak
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return stats, nil
}

// DeleteUser purges profile, plan history, and progress for the user. The
// per-user lock makes the purge atomic from the caller's perspective.
func (s *workoutService) DeleteUser(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.profiles.Delete(ctx, userID); err != nil {
		return err
	}
	if err := s.plans.DeleteAll(ctx, userID); err != nil {
		return err
	}
	if err := s.progress.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Infow("user data deleted", "userId", userID)
	return nil
}
