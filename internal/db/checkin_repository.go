package db

import (
	"context"
	"time"

	"github.com/terraincognita07/fittrack/internal/kv"
	"github.com/terraincognita07/fittrack/internal/models"
	"github.com/terraincognita07/fittrack/internal/security"
)

const isoDateLayout = "2006-01-02"

type CheckInRepository struct {
	records *Collection[models.CheckIn]
	now     func() time.Time
}

func NewCheckInRepository(store kv.Store) *CheckInRepository {
	return &CheckInRepository{
		records: NewCollection[models.CheckIn](store, CheckInsKey),
		now:     time.Now,
	}
}

// List returns all check-ins in persisted (append) order.
func (repo *CheckInRepository) List(ctx context.Context) ([]models.CheckIn, error) {
	return repo.records.ReadAll(ctx)
}

// Add stamps the draft with a fresh id and creation timestamp, appends
// it and persists the collection. The draft's ID and Timestamp fields
// are ignored.
func (repo *CheckInRepository) Add(ctx context.Context, draft models.CheckIn) (models.CheckIn, error) {
	now := repo.now()
	id, err := security.NewRecordID("checkin", now)
	if err != nil {
		return models.CheckIn{}, err
	}

	draft.ID = id
	draft.Timestamp = now.UnixMilli()

	if _, err := repo.records.Update(ctx, func(checkIns []models.CheckIn) []models.CheckIn {
		return append(checkIns, draft)
	}); err != nil {
		return models.CheckIn{}, err
	}
	return draft, nil
}

// TodayCheckIn returns the earliest persisted check-in dated today. The
// second result reports whether one exists; duplicate same-day records
// never surface here, only the first appended one does.
func (repo *CheckInRepository) TodayCheckIn(ctx context.Context) (models.CheckIn, bool, error) {
	today := repo.now().Format(isoDateLayout)

	checkIns, err := repo.records.ReadAll(ctx)
	if err != nil {
		return models.CheckIn{}, false, err
	}
	for _, checkIn := range checkIns {
		if checkIn.Date == today {
			return checkIn, true, nil
		}
	}
	return models.CheckIn{}, false, nil
}

// ListForDate returns the check-ins attributed to the given ISO date.
func (repo *CheckInRepository) ListForDate(ctx context.Context, date string) ([]models.CheckIn, error) {
	return repo.ListInRange(ctx, date, date)
}

// ListInRange returns check-ins with startDate <= date <= endDate,
// bounds inclusive, compared as ISO date strings.
func (repo *CheckInRepository) ListInRange(ctx context.Context, startDate string, endDate string) ([]models.CheckIn, error) {
	checkIns, err := repo.records.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.CheckIn, 0, len(checkIns))
	for _, checkIn := range checkIns {
		if checkIn.Date >= startDate && checkIn.Date <= endDate {
			matched = append(matched, checkIn)
		}
	}
	return matched, nil
}
