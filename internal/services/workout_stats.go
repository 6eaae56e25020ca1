package services

import (
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/fittrack/internal/models"
)

// MostFrequentSentinel is reported when the window holds no workouts.
const MostFrequentSentinel = "N/A"

const histogramDays = 7

type WorkoutAggregate struct {
	TotalWorkouts   int    `json:"totalWorkouts"`
	TotalDuration   int    `json:"totalDuration"`
	AverageDuration int    `json:"averageDuration"`
	MostFrequent    string `json:"mostFrequent"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// BuildWorkoutAggregate computes count, total and rounded average
// duration and the most frequent exercise type over the given (already
// window-filtered) workouts. An empty set yields zeros and the "N/A"
// sentinel rather than an error.
func BuildWorkoutAggregate(workouts []models.Workout) WorkoutAggregate {
	if len(workouts) == 0 {
		return WorkoutAggregate{MostFrequent: MostFrequentSentinel}
	}

	totalDuration := 0
	for _, workout := range workouts {
		totalDuration += workout.Duration
	}

	return WorkoutAggregate{
		TotalWorkouts:   len(workouts),
		TotalDuration:   totalDuration,
		AverageDuration: int(math.Round(float64(totalDuration) / float64(len(workouts)))),
		MostFrequent:    mostFrequentExerciseType(workouts),
	}
}

// mostFrequentExerciseType picks the exercise type with the highest
// occurrence count. Ties break to the lexicographically smallest type so
// repeated calls over the same input always agree.
func mostFrequentExerciseType(workouts []models.Workout) string {
	counts := make(map[string]int, len(models.ExerciseTypes))
	for _, workout := range workouts {
		counts[workout.ExerciseType]++
	}

	best := ""
	bestCount := 0
	for exerciseType, count := range counts {
		if count > bestCount || (count == bestCount && exerciseType < best) {
			best = exerciseType
			bestCount = count
		}
	}
	return capitalizeFirst(best)
}

func capitalizeFirst(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

// CurrentStreak counts consecutive calendar days with at least one
// workout, walking backward from today over the full workout set. A day
// without a workout stops the walk, so no workout today means zero.
func CurrentStreak(workouts []models.Workout, today time.Time) int {
	daysWithWorkout := make(map[string]struct{}, len(workouts))
	for _, workout := range workouts {
		daysWithWorkout[workout.Date] = struct{}{}
	}

	streak := 0
	day := today
	for {
		if _, ok := daysWithWorkout[FormatDay(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// DailyWorkoutCounts returns the per-day workout count for the last
// seven calendar days, oldest first and ending with today. Days without
// workouts are present with a zero count.
func DailyWorkoutCounts(workouts []models.Workout, today time.Time) []DailyCount {
	counts := make(map[string]int, len(workouts))
	for _, workout := range workouts {
		counts[workout.Date]++
	}

	days := make([]DailyCount, 0, histogramDays)
	for offset := histogramDays - 1; offset >= 0; offset-- {
		date := FormatDay(today.AddDate(0, 0, -offset))
		days = append(days, DailyCount{Date: date, Count: counts[date]})
	}
	return days
}
