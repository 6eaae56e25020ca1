package services

import (
	"context"
	"testing"

	"github.com/terraincognita07/fittrack/internal/db"
	"github.com/terraincognita07/fittrack/internal/kv"
	"github.com/terraincognita07/fittrack/internal/models"
)

func TestWipeAllClearsEveryCollection(t *testing.T) {
	store := kv.NewMemoryStore()
	repositories := db.NewRepositories(store)
	ctx := context.Background()

	if _, err := repositories.Workouts.Add(ctx, models.Workout{Date: "2026-08-30", ExerciseType: models.ExerciseRunning, Duration: 30}); err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	if _, err := repositories.CheckIns.Add(ctx, models.CheckIn{Date: "2026-08-30", Mood: models.MoodGood}); err != nil {
		t.Fatalf("seed check-in: %v", err)
	}
	if err := repositories.Settings.Put(ctx, models.UserSettings{DisplayName: "Alex", WeeklyGoal: 4, ReminderTime: "06:00"}); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	if err := NewWipeService(store).WipeAll(ctx); err != nil {
		t.Fatalf("WipeAll() unexpected error: %v", err)
	}

	workouts, err := repositories.Workouts.List(ctx)
	if err != nil {
		t.Fatalf("List() workouts after wipe: %v", err)
	}
	if len(workouts) != 0 {
		t.Fatalf("expected no workouts after wipe, got %d", len(workouts))
	}

	checkIns, err := repositories.CheckIns.List(ctx)
	if err != nil {
		t.Fatalf("List() check-ins after wipe: %v", err)
	}
	if len(checkIns) != 0 {
		t.Fatalf("expected no check-ins after wipe, got %d", len(checkIns))
	}

	settings, err := repositories.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get() settings after wipe: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Fatalf("expected default settings after wipe, got %#v", settings)
	}
}
