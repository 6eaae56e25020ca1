package api

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/terraincognita07/fittrack/internal/models"
)

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var reminderTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type workoutInput struct {
	Date         string `json:"date"`
	ExerciseType string `json:"exerciseType"`
	Duration     int    `json:"duration"`
	Intensity    string `json:"intensity"`
	Notes        string `json:"notes"`
}

type checkInInput struct {
	Date         string `json:"date"`
	Mood         string `json:"mood"`
	EnergyLevel  int    `json:"energyLevel"`
	SleepQuality string `json:"sleepQuality"`
	Notes        string `json:"notes"`
}

type settingsInput struct {
	DisplayName          string `json:"displayName"`
	WeeklyGoal           int    `json:"weeklyGoal"`
	ReminderEnabled      bool   `json:"reminderEnabled"`
	ReminderTime         string `json:"reminderTime"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

func validISODate(value string) bool {
	if !isoDateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func (input *workoutInput) validate() error {
	input.Date = strings.TrimSpace(input.Date)
	input.Notes = strings.TrimSpace(input.Notes)

	if !validISODate(input.Date) {
		return errors.New("invalid date")
	}
	if !models.IsValidExerciseType(input.ExerciseType) {
		return errors.New("invalid exercise type")
	}
	if input.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	if !models.IsValidIntensity(input.Intensity) {
		return errors.New("invalid intensity")
	}
	return nil
}

func (input *checkInInput) validate() error {
	input.Date = strings.TrimSpace(input.Date)
	input.Notes = strings.TrimSpace(input.Notes)

	if !validISODate(input.Date) {
		return errors.New("invalid date")
	}
	if !models.IsValidMood(input.Mood) {
		return errors.New("invalid mood")
	}
	if input.EnergyLevel < 1 || input.EnergyLevel > 10 {
		return errors.New("energy level must be between 1 and 10")
	}
	if !models.IsValidSleepQuality(input.SleepQuality) {
		return errors.New("invalid sleep quality")
	}
	return nil
}

func (input *settingsInput) validate() error {
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	if input.DisplayName == "" {
		return errors.New("display name must not be empty")
	}
	if input.WeeklyGoal <= 0 {
		return errors.New("weekly goal must be positive")
	}
	if !reminderTimeRegex.MatchString(input.ReminderTime) {
		return errors.New("reminder time must be HH:mm")
	}
	return nil
}
