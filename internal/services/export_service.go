package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/fittrack/internal/models"
)

const (
	exportTitle          = "Fitness Tracker Data Export"
	exportWorkoutHeader  = "Date,Exercise Type,Duration (min),Intensity,Notes,Timestamp"
	exportCheckInHeader  = "Date,Mood,Energy Level,Sleep Quality,Notes,Timestamp"
	exportWorkoutSection = "WORKOUTS"
	exportCheckInSection = "CHECK-INS"
)

type ExportWorkoutReader interface {
	List(ctx context.Context) ([]models.Workout, error)
}

type ExportCheckInReader interface {
	List(ctx context.Context) ([]models.CheckIn, error)
}

type ExportService struct {
	workouts ExportWorkoutReader
	checkIns ExportCheckInReader
}

type ExportSummary struct {
	TotalWorkouts int    `json:"totalWorkouts"`
	TotalCheckIns int    `json:"totalCheckIns"`
	HasData       bool   `json:"hasData"`
	DateFrom      string `json:"dateFrom,omitempty"`
	DateTo        string `json:"dateTo,omitempty"`
}

func NewExportService(workouts ExportWorkoutReader, checkIns ExportCheckInReader) *ExportService {
	return &ExportService{workouts: workouts, checkIns: checkIns}
}

// BuildReport renders the full dataset as the plain-text export: a
// title and timestamp header, then a CSV block per collection. Notes
// are wrapped in quotes without escaping; an embedded quote corrupts
// its row (known format limitation).
func (service *ExportService) BuildReport(ctx context.Context, now time.Time) (string, error) {
	workouts, err := service.workouts.List(ctx)
	if err != nil {
		return "", err
	}
	checkIns, err := service.checkIns.List(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(workouts)+len(checkIns)+8)
	lines = append(lines,
		exportTitle,
		now.UTC().Format(time.RFC3339),
		"",
		exportWorkoutSection,
		exportWorkoutHeader,
	)
	for _, workout := range workouts {
		lines = append(lines, fmt.Sprintf("%s,%s,%d,%s,\"%s\",%d",
			workout.Date,
			workout.ExerciseType,
			workout.Duration,
			workout.Intensity,
			workout.Notes,
			workout.Timestamp,
		))
	}

	lines = append(lines, "", exportCheckInSection, exportCheckInHeader)
	for _, checkIn := range checkIns {
		lines = append(lines, fmt.Sprintf("%s,%s,%d,%s,\"%s\",%d",
			checkIn.Date,
			checkIn.Mood,
			checkIn.EnergyLevel,
			checkIn.SleepQuality,
			checkIn.Notes,
			checkIn.Timestamp,
		))
	}

	return strings.Join(lines, "\n"), nil
}

// BuildSummary reports how much data a full export would cover and the
// date bounds across both collections.
func (service *ExportService) BuildSummary(ctx context.Context) (ExportSummary, error) {
	workouts, err := service.workouts.List(ctx)
	if err != nil {
		return ExportSummary{}, err
	}
	checkIns, err := service.checkIns.List(ctx)
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{
		TotalWorkouts: len(workouts),
		TotalCheckIns: len(checkIns),
	}
	if summary.TotalWorkouts == 0 && summary.TotalCheckIns == 0 {
		return summary, nil
	}

	summary.HasData = true
	for _, workout := range workouts {
		summary.extendBounds(workout.Date)
	}
	for _, checkIn := range checkIns {
		summary.extendBounds(checkIn.Date)
	}
	return summary, nil
}

func (summary *ExportSummary) extendBounds(date string) {
	if summary.DateFrom == "" || date < summary.DateFrom {
		summary.DateFrom = date
	}
	if summary.DateTo == "" || date > summary.DateTo {
		summary.DateTo = date
	}
}
