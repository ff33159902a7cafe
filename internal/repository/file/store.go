// Package file provides a JSON-file backed implementation of the repository
// interfaces: one file per collection, loaded at open and flushed
// synchronously on every write. Suitable for single-node deployments and
// tests; MongoDB is the primary backing in production.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/repository"
)

const (
	profilesFile = "profiles.json"
	plansFile    = "plans.json"
	progressFile = "progress.json"
)

// Store holds the three collections in memory and persists them as JSON
// files under dir. A single RWMutex serializes writes; reads share the lock.
type Store struct {
	mu  sync.RWMutex
	dir string

	profiles map[string]domain.Profile
	plans    map[string][]domain.WorkoutPlan
	progress map[string]domain.Progress
}

// Open loads (or initializes) a store rooted at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		dir:      dir,
		profiles: map[string]domain.Profile{},
		plans:    map[string][]domain.WorkoutPlan{},
		progress: map[string]domain.Progress{},
	}

	if err := loadJSON(filepath.Join(dir, profilesFile), &s.profiles); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, plansFile), &s.plans); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, progressFile), &s.progress); err != nil {
		return nil, err
	}
	return s, nil
}

func loadJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// flush must be called with the write lock held.
func (s *Store) flush(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

// Profiles returns the profile collection view.
func (s *Store) Profiles() repository.ProfileRepository { return &profileStore{s} }

// Plans returns the plan history collection view.
func (s *Store) Plans() repository.PlanRepository { return &planStore{s} }

// Progress returns the progress collection view.
func (s *Store) Progress() repository.ProgressRepository { return &progressStore{s} }

// --- profiles ---

type profileStore struct{ s *Store }

func (r *profileStore) Save(_ context.Context, profile *domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.profiles[profile.UserID] = *profile
	return r.s.flush(profilesFile, r.s.profiles)
}

func (r *profileStore) Get(_ context.Context, userID string) (*domain.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	profile, ok := r.s.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &profile, nil
}

func (r *profileStore) Delete(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.profiles, userID)
	return r.s.flush(profilesFile, r.s.profiles)
}

// --- plans ---

type planStore struct{ s *Store }

func (r *planStore) Append(_ context.Context, plan *domain.WorkoutPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.plans[plan.UserID] = append(r.s.plans[plan.UserID], *plan)
	return r.s.flush(plansFile, r.s.plans)
}

func (r *planStore) GetCurrent(_ context.Context, userID string) (*domain.WorkoutPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	history := r.s.plans[userID]
	if len(history) == 0 {
		return nil, repository.ErrNotFound
	}
	current := history[len(history)-1]
	return &current, nil
}

func (r *planStore) GetHistory(_ context.Context, userID string) ([]domain.WorkoutPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	history := r.s.plans[userID]
	out := make([]domain.WorkoutPlan, len(history))
	copy(out, history)
	return out, nil
}

func (r *planStore) UpdateCurrent(_ context.Context, plan *domain.WorkoutPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	history := r.s.plans[plan.UserID]
	for i := range history {
		if history[i].Week == plan.Week {
			history[i] = *plan
			return r.s.flush(plansFile, r.s.plans)
		}
	}
	return repository.ErrNotFound
}

func (r *planStore) DeleteAll(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.plans, userID)
	return r.s.flush(plansFile, r.s.plans)
}

// --- progress ---

type progressStore struct{ s *Store }

func (r *progressStore) Save(_ context.Context, progress *domain.Progress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.progress[progress.UserID] = *progress
	return r.s.flush(progressFile, r.s.progress)
}

func (r *progressStore) Get(_ context.Context, userID string) (*domain.Progress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	progress, ok := r.s.progress[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &progress, nil
}

func (r *progressStore) Delete(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.progress, userID)
	return r.s.flush(progressFile, r.s.progress)
}
