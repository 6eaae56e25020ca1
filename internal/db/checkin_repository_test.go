package db

import (
	"context"
	"testing"
	"time"

	"github.com/terraincognita07/fittrack/internal/kv"
	"github.com/terraincognita07/fittrack/internal/models"
)

func TestCheckInAddAndList(t *testing.T) {
	repo := NewCheckInRepository(kv.NewMemoryStore())
	ctx := context.Background()

	stored, err := repo.Add(ctx, models.CheckIn{
		Date:         "2026-08-30",
		Mood:         models.MoodGood,
		EnergyLevel:  7,
		SleepQuality: models.SleepGood,
		Notes:        "slept well",
	})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if stored.ID == "" || stored.Timestamp == 0 {
		t.Fatalf("expected stamped id and timestamp, got %q / %d", stored.ID, stored.Timestamp)
	}

	checkIns, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(checkIns) != 1 || checkIns[0].Mood != models.MoodGood {
		t.Fatalf("expected stored check-in back, got %#v", checkIns)
	}
}

func TestTodayCheckInReturnsEarliestDuplicate(t *testing.T) {
	repo := NewCheckInRepository(kv.NewMemoryStore())
	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return today }
	ctx := context.Background()

	first, err := repo.Add(ctx, models.CheckIn{Date: "2026-08-30", Mood: models.MoodOkay})
	if err != nil {
		t.Fatalf("Add() first unexpected error: %v", err)
	}
	if _, err := repo.Add(ctx, models.CheckIn{Date: "2026-08-30", Mood: models.MoodGreat}); err != nil {
		t.Fatalf("Add() duplicate unexpected error: %v", err)
	}

	found, ok, err := repo.TodayCheckIn(ctx)
	if err != nil {
		t.Fatalf("TodayCheckIn() unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a check-in for today")
	}
	if found.ID != first.ID {
		t.Fatalf("expected earliest persisted check-in %q, got %q", first.ID, found.ID)
	}
}

func TestTodayCheckInAbsentIsNotAnError(t *testing.T) {
	repo := NewCheckInRepository(kv.NewMemoryStore())
	repo.now = func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) }

	if _, err := repo.Add(context.Background(), models.CheckIn{Date: "2026-08-29", Mood: models.MoodTired}); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	_, ok, err := repo.TodayCheckIn(context.Background())
	if err != nil {
		t.Fatalf("TodayCheckIn() unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected no check-in for today")
	}
}

func TestCheckInListInRangeInclusiveBounds(t *testing.T) {
	repo := NewCheckInRepository(kv.NewMemoryStore())
	ctx := context.Background()

	for _, date := range []string{"2026-08-01", "2026-08-15", "2026-08-31"} {
		if _, err := repo.Add(ctx, models.CheckIn{Date: date, Mood: models.MoodGood}); err != nil {
			t.Fatalf("Add(%s) unexpected error: %v", date, err)
		}
	}

	checkIns, err := repo.ListInRange(ctx, "2026-08-01", "2026-08-15")
	if err != nil {
		t.Fatalf("ListInRange() unexpected error: %v", err)
	}
	if len(checkIns) != 2 {
		t.Fatalf("expected 2 check-ins in range, got %d", len(checkIns))
	}
}
