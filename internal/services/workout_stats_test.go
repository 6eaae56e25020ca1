package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/fittrack/internal/models"
)

func testDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse(ISODateLayout, value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func TestBuildWorkoutAggregateEmptySetYieldsSentinel(t *testing.T) {
	aggregate := BuildWorkoutAggregate(nil)

	if aggregate.TotalWorkouts != 0 || aggregate.TotalDuration != 0 || aggregate.AverageDuration != 0 {
		t.Fatalf("expected zeroed aggregate, got %#v", aggregate)
	}
	if aggregate.MostFrequent != MostFrequentSentinel {
		t.Fatalf("expected %q sentinel, got %q", MostFrequentSentinel, aggregate.MostFrequent)
	}
}

func TestBuildWorkoutAggregateRoundsAverage(t *testing.T) {
	aggregate := BuildWorkoutAggregate([]models.Workout{
		{ExerciseType: models.ExerciseRunning, Duration: 20},
		{ExerciseType: models.ExerciseRunning, Duration: 30},
		{ExerciseType: models.ExerciseRunning, Duration: 25},
	})

	if aggregate.TotalWorkouts != 3 {
		t.Fatalf("expected 3 workouts, got %d", aggregate.TotalWorkouts)
	}
	if aggregate.TotalDuration != 75 {
		t.Fatalf("expected total 75, got %d", aggregate.TotalDuration)
	}
	if aggregate.AverageDuration != 25 {
		t.Fatalf("expected average 25, got %d", aggregate.AverageDuration)
	}
}

func TestMostFrequentCapitalizesWinner(t *testing.T) {
	aggregate := BuildWorkoutAggregate([]models.Workout{
		{ExerciseType: models.ExerciseYoga, Duration: 30},
		{ExerciseType: models.ExerciseYoga, Duration: 30},
		{ExerciseType: models.ExerciseRunning, Duration: 30},
	})

	if aggregate.MostFrequent != "Yoga" {
		t.Fatalf("expected Yoga, got %q", aggregate.MostFrequent)
	}
}

func TestMostFrequentTieBreaksLexicographically(t *testing.T) {
	workouts := []models.Workout{
		{ExerciseType: models.ExerciseRunning, Duration: 30},
		{ExerciseType: models.ExerciseCycling, Duration: 30},
	}

	for i := 0; i < 10; i++ {
		aggregate := BuildWorkoutAggregate(workouts)
		if aggregate.MostFrequent != "Cycling" {
			t.Fatalf("expected deterministic Cycling on tie, got %q (attempt %d)", aggregate.MostFrequent, i)
		}
	}
}

func TestCurrentStreakStopsAtFirstGap(t *testing.T) {
	today := testDay(t, "2026-08-30")
	workouts := []models.Workout{
		{Date: "2026-08-30"},
		{Date: "2026-08-29"},
		{Date: "2026-08-28"},
		// no workout on 2026-08-27
		{Date: "2026-08-26"},
	}

	if streak := CurrentStreak(workouts, today); streak != 3 {
		t.Fatalf("expected streak 3, got %d", streak)
	}
}

func TestCurrentStreakZeroWithoutWorkoutToday(t *testing.T) {
	today := testDay(t, "2026-08-30")
	workouts := []models.Workout{{Date: "2026-08-29"}, {Date: "2026-08-28"}}

	if streak := CurrentStreak(workouts, today); streak != 0 {
		t.Fatalf("expected streak 0, got %d", streak)
	}
}

func TestCurrentStreakCountsDuplicateDaysOnce(t *testing.T) {
	today := testDay(t, "2026-08-30")
	workouts := []models.Workout{
		{Date: "2026-08-30"},
		{Date: "2026-08-30"},
	}

	if streak := CurrentStreak(workouts, today); streak != 1 {
		t.Fatalf("expected streak 1, got %d", streak)
	}
}

func TestDailyWorkoutCountsCoversSevenDaysWithZeros(t *testing.T) {
	today := testDay(t, "2026-08-30")
	workouts := []models.Workout{
		{Date: "2026-08-30"},
		{Date: "2026-08-30"},
		{Date: "2026-08-27"},
		{Date: "2026-08-01"}, // outside the last seven days
	}

	counts := DailyWorkoutCounts(workouts, today)
	if len(counts) != 7 {
		t.Fatalf("expected 7 days, got %d", len(counts))
	}
	if counts[0].Date != "2026-08-24" || counts[6].Date != "2026-08-30" {
		t.Fatalf("expected oldest-first window 2026-08-24..2026-08-30, got %s..%s", counts[0].Date, counts[6].Date)
	}

	byDate := make(map[string]int, len(counts))
	for _, day := range counts {
		byDate[day.Date] = day.Count
	}
	if byDate["2026-08-30"] != 2 {
		t.Fatalf("expected 2 workouts today, got %d", byDate["2026-08-30"])
	}
	if byDate["2026-08-27"] != 1 {
		t.Fatalf("expected 1 workout on 2026-08-27, got %d", byDate["2026-08-27"])
	}
	if byDate["2026-08-25"] != 0 {
		t.Fatalf("expected implicit zero for 2026-08-25, got %d", byDate["2026-08-25"])
	}
}
