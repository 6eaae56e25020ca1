package services

import (
	"context"

	"github.com/terraincognita07/fittrack/internal/db"
	"github.com/terraincognita07/fittrack/internal/kv"
)

type WipeService struct {
	store kv.Store
}

func NewWipeService(store kv.Store) *WipeService {
	return &WipeService{store: store}
}

// WipeAll irreversibly deletes the workout, check-in and settings
// collections in one substrate call. Subsequent reads see empty lists
// and default settings.
func (service *WipeService) WipeAll(ctx context.Context) error {
	return service.store.DeleteKeys(ctx, db.WorkoutsKey, db.CheckInsKey, db.SettingsKey)
}
