package services

import (
	"context"
	"time"

	"github.com/terraincognita07/fittrack/internal/models"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

func IsValidPeriod(value string) bool {
	switch Period(value) {
	case PeriodWeek, PeriodMonth, PeriodAll:
		return true
	}
	return false
}

// DateRange is a fully inclusive [Start, End] window of ISO dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether the ISO date falls inside the window.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// ResolveWindow turns a period selector into a concrete window ending
// today: week is the trailing seven days, month the trailing calendar
// month, all reaches back to the epoch.
func ResolveWindow(period Period, today time.Time) DateRange {
	end := FormatDay(today)
	switch period {
	case PeriodWeek:
		return DateRange{Start: FormatDay(today.AddDate(0, 0, -7)), End: end}
	case PeriodMonth:
		return DateRange{Start: FormatDay(today.AddDate(0, -1, 0)), End: end}
	default:
		return DateRange{Start: EpochDay, End: end}
	}
}

type StatsWorkoutReader interface {
	List(ctx context.Context) ([]models.Workout, error)
}

type StatsCheckInReader interface {
	List(ctx context.Context) ([]models.CheckIn, error)
}

type StatsService struct {
	workouts StatsWorkoutReader
	checkIns StatsCheckInReader
}

func NewStatsService(workouts StatsWorkoutReader, checkIns StatsCheckInReader) *StatsService {
	return &StatsService{workouts: workouts, checkIns: checkIns}
}

// Overview bundles everything the progress surface renders for one
// period selection.
type Overview struct {
	Period      Period           `json:"period"`
	Window      DateRange        `json:"window"`
	Aggregate   WorkoutAggregate `json:"aggregate"`
	Streak      int              `json:"streak"`
	DailyCounts []DailyCount     `json:"dailyCounts"`
	MoodTrend   []int            `json:"moodTrend"`
}

const moodTrendPoints = 7

// BuildOverview loads both collections and derives the window-scoped
// aggregate, the streak over the full workout set, the last-7-day
// histogram and the mood trend.
func (service *StatsService) BuildOverview(ctx context.Context, period Period, now time.Time) (Overview, error) {
	window := ResolveWindow(period, now)

	workouts, err := service.workouts.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	checkIns, err := service.checkIns.List(ctx)
	if err != nil {
		return Overview{}, err
	}

	windowed := FilterWorkoutsByRange(workouts, window)
	scores := MoodTrendScores(FilterCheckInsByRange(checkIns, window))

	return Overview{
		Period:      period,
		Window:      window,
		Aggregate:   BuildWorkoutAggregate(windowed),
		Streak:      CurrentStreak(workouts, now),
		DailyCounts: DailyWorkoutCounts(workouts, now),
		MoodTrend:   TrimTrailingMoodScores(scores, moodTrendPoints),
	}, nil
}

// FilterWorkoutsByRange keeps workouts whose date lies inside the
// window, preserving persisted order.
func FilterWorkoutsByRange(workouts []models.Workout, window DateRange) []models.Workout {
	matched := make([]models.Workout, 0, len(workouts))
	for _, workout := range workouts {
		if window.Contains(workout.Date) {
			matched = append(matched, workout)
		}
	}
	return matched
}

// FilterCheckInsByRange keeps check-ins whose date lies inside the
// window, preserving persisted order.
func FilterCheckInsByRange(checkIns []models.CheckIn, window DateRange) []models.CheckIn {
	matched := make([]models.CheckIn, 0, len(checkIns))
	for _, checkIn := range checkIns {
		if window.Contains(checkIn.Date) {
			matched = append(matched, checkIn)
		}
	}
	return matched
}
