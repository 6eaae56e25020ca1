package db

import "github.com/terraincognita07/fittrack/internal/kv"

type Repositories struct {
	Workouts *WorkoutRepository
	CheckIns *CheckInRepository
	Settings *SettingsRepository
}

func NewRepositories(store kv.Store) *Repositories {
	return &Repositories{
		Workouts: NewWorkoutRepository(store),
		CheckIns: NewCheckInRepository(store),
		Settings: NewSettingsRepository(store),
	}
}
