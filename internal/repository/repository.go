package repository

import (
	"context"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors from other failures.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository persists user profiles keyed by user id.
type ProfileRepository interface {
	Save(ctx context.Context, profile *domain.Profile) error // upsert
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Delete(ctx context.Context, userID string) error
}

// PlanRepository persists each user's workout plan history. Appending a plan
// makes it the current one; the current plan is the highest week on record.
type PlanRepository interface {
	Append(ctx context.Context, plan *domain.WorkoutPlan) error
	GetCurrent(ctx context.Context, userID string) (*domain.WorkoutPlan, error)
	GetHistory(ctx context.Context, userID string) ([]domain.WorkoutPlan, error)
	// UpdateCurrent overwrites the stored plan for (userID, week), used when
	// completion flags change on the current plan.
	UpdateCurrent(ctx context.Context, plan *domain.WorkoutPlan) error
	DeleteAll(ctx context.Context, userID string) error
}

// ProgressRepository persists per-user progress records.
type ProgressRepository interface {
	Save(ctx context.Context, progress *domain.Progress) error // upsert
	Get(ctx context.Context, userID string) (*domain.Progress, error)
	Delete(ctx context.Context, userID string) error
}
