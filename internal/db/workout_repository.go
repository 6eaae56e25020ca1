package db

import (
	"context"
	"time"

	"github.com/terraincognita07/fittrack/internal/kv"
	"github.com/terraincognita07/fittrack/internal/models"
	"github.com/terraincognita07/fittrack/internal/security"
)

type WorkoutRepository struct {
	records *Collection[models.Workout]
	now     func() time.Time
}

func NewWorkoutRepository(store kv.Store) *WorkoutRepository {
	return &WorkoutRepository{
		records: NewCollection[models.Workout](store, WorkoutsKey),
		now:     time.Now,
	}
}

// List returns all workouts in persisted (append) order.
func (repo *WorkoutRepository) List(ctx context.Context) ([]models.Workout, error) {
	return repo.records.ReadAll(ctx)
}

// Add stamps the draft with a fresh id and creation timestamp, appends
// it to the collection and persists the result. The draft's ID and
// Timestamp fields are ignored.
func (repo *WorkoutRepository) Add(ctx context.Context, draft models.Workout) (models.Workout, error) {
	now := repo.now()
	id, err := security.NewRecordID("workout", now)
	if err != nil {
		return models.Workout{}, err
	}

	draft.ID = id
	draft.Timestamp = now.UnixMilli()

	if _, err := repo.records.Update(ctx, func(workouts []models.Workout) []models.Workout {
		return append(workouts, draft)
	}); err != nil {
		return models.Workout{}, err
	}
	return draft, nil
}

// Remove filters the id out of the collection. Removing an id that was
// never stored leaves the collection unchanged.
func (repo *WorkoutRepository) Remove(ctx context.Context, id string) error {
	_, err := repo.records.Update(ctx, func(workouts []models.Workout) []models.Workout {
		kept := workouts[:0]
		for _, workout := range workouts {
			if workout.ID != id {
				kept = append(kept, workout)
			}
		}
		return kept
	})
	return err
}

// ListForDate returns the workouts attributed to the given ISO date.
func (repo *WorkoutRepository) ListForDate(ctx context.Context, date string) ([]models.Workout, error) {
	return repo.ListInRange(ctx, date, date)
}

// ListInRange returns workouts with startDate <= date <= endDate. ISO
// dates compare lexicographically in calendar order, so plain string
// comparison is correct.
func (repo *WorkoutRepository) ListInRange(ctx context.Context, startDate string, endDate string) ([]models.Workout, error) {
	workouts, err := repo.records.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Workout, 0, len(workouts))
	for _, workout := range workouts {
		if workout.Date >= startDate && workout.Date <= endDate {
			matched = append(matched, workout)
		}
	}
	return matched, nil
}
