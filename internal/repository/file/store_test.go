package file

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/repository"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		UserID:         "user-1",
		Age:            30,
		Goal:           domain.GoalMuscleGain,
		Experience:     domain.ExperienceIntermediate,
		Equipment:      []domain.Equipment{domain.EquipmentGym},
		SessionMinutes: 60,
		DaysPerWeek:    4,
	}
}

func testPlan(week int) *domain.WorkoutPlan {
	return &domain.WorkoutPlan{
		UserID: "user-1",
		Week:   week,
		Days: []domain.DayPlan{
			{Day: "Day 1", Focus: "Push", Exercises: []domain.Exercise{
				{Name: "Bench Press", Sets: 4, Reps: "6-8", RestSeconds: 120},
			}},
		},
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	profiles := store.Profiles()

	if _, err := profiles.Get(ctx, "user-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}

	if err := profiles.Save(ctx, testProfile()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := profiles.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Goal != domain.GoalMuscleGain || got.DaysPerWeek != 4 {
		t.Fatalf("profile round trip mismatch: %+v", got)
	}

	// Save is an upsert.
	updated := testProfile()
	updated.DaysPerWeek = 5
	if err := profiles.Save(ctx, updated); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, _ = profiles.Get(ctx, "user-1")
	if got.DaysPerWeek != 5 {
		t.Fatalf("upsert did not overwrite, got %d days", got.DaysPerWeek)
	}

	if err := profiles.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := profiles.Get(ctx, "user-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPlanHistoryOrderAndCurrent(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	plans := store.Plans()

	if _, err := plans.GetCurrent(ctx, "user-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty history, got %v", err)
	}

	for week := 1; week <= 3; week++ {
		if err := plans.Append(ctx, testPlan(week)); err != nil {
			t.Fatalf("append week %d: %v", week, err)
		}
	}

	current, err := plans.GetCurrent(ctx, "user-1")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Week != 3 {
		t.Fatalf("current week = %d, want 3", current.Week)
	}

	history, err := plans.GetHistory(ctx, "user-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	for i, plan := range history {
		if plan.Week != i+1 {
			t.Fatalf("history[%d].Week = %d, want %d", i, plan.Week, i+1)
		}
	}

	if err := plans.DeleteAll(ctx, "user-1"); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	history, _ = plans.GetHistory(ctx, "user-1")
	if len(history) != 0 {
		t.Fatalf("history not empty after delete: %d", len(history))
	}
}

func TestUpdateCurrentMatchesByWeek(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	plans := store.Plans()

	if err := plans.Append(ctx, testPlan(1)); err != nil {
		t.Fatalf("append: %v", err)
	}

	updated := testPlan(1)
	updated.Days[0].Exercises[0].Completed = true
	if err := plans.UpdateCurrent(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	current, _ := plans.GetCurrent(ctx, "user-1")
	if !current.Days[0].Exercises[0].Completed {
		t.Fatal("update did not persist the completion flag")
	}

	missing := testPlan(9)
	if err := plans.UpdateCurrent(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown week, got %v", err)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	progress := store.Progress()

	record := &domain.Progress{
		UserID:        "user-1",
		Week:          2,
		Days:          []domain.DayProgress{{Day: "Day 1", Total: 3, Completed: 1}},
		CurrentStreak: 4,
	}
	if err := progress.Save(ctx, record); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := progress.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Week != 2 || got.CurrentStreak != 4 || len(got.Days) != 1 {
		t.Fatalf("progress round trip mismatch: %+v", got)
	}

	if err := progress.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := progress.Get(ctx, "user-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStoreReloadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Profiles().Save(ctx, testProfile()); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if err := store.Plans().Append(ctx, testPlan(1)); err != nil {
		t.Fatalf("append plan: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	profile, err := reopened.Profiles().Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("profile lost across reopen: %v", err)
	}
	if profile.Goal != domain.GoalMuscleGain {
		t.Fatalf("profile goal = %q after reopen", profile.Goal)
	}
	plan, err := reopened.Plans().GetCurrent(ctx, "user-1")
	if err != nil {
		t.Fatalf("plan lost across reopen: %v", err)
	}
	if plan.Week != 1 || plan.Days[0].Exercises[0].Name != "Bench Press" {
		t.Fatalf("plan round trip mismatch: %+v", plan)
	}
}
