package db

import (
	"context"
	"encoding/json"

	"github.com/terraincognita07/fittrack/internal/kv"
	"github.com/terraincognita07/fittrack/internal/models"
)

type SettingsRepository struct {
	store kv.Store
}

func NewSettingsRepository(store kv.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the persisted settings, or the default record when
// nothing was ever saved. Absence is never an error.
func (repo *SettingsRepository) Get(ctx context.Context) (models.UserSettings, error) {
	raw, present, err := repo.store.Get(ctx, SettingsKey)
	if err != nil {
		return models.UserSettings{}, err
	}
	if !present || raw == "" {
		return models.DefaultSettings(), nil
	}

	settings := models.UserSettings{}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.UserSettings{}, &ParseError{Key: SettingsKey, Err: err}
	}
	return settings, nil
}

// Put unconditionally replaces the whole settings record. Validation is
// the caller's job.
func (repo *SettingsRepository) Put(ctx context.Context, settings models.UserSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return &WriteError{Key: SettingsKey, Err: err}
	}
	if err := repo.store.Set(ctx, SettingsKey, string(raw)); err != nil {
		return &WriteError{Key: SettingsKey, Err: err}
	}
	return nil
}
