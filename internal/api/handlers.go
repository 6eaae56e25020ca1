// Package api exposes the core operations as a local JSON surface. It
// validates input shapes the way the original forms did; the layers
// below it trust what they receive.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fittrack/internal/db"
	"github.com/terraincognita07/fittrack/internal/kv"
	"github.com/terraincognita07/fittrack/internal/services"
)

type Handler struct {
	repositories  *db.Repositories
	statsService  *services.StatsService
	exportService *services.ExportService
	wipeService   *services.WipeService
	now           func() time.Time
}

func NewHandler(store kv.Store) *Handler {
	repositories := db.NewRepositories(store)
	return &Handler{
		repositories:  repositories,
		statsService:  services.NewStatsService(repositories.Workouts, repositories.CheckIns),
		exportService: services.NewExportService(repositories.Workouts, repositories.CheckIns),
		wipeService:   services.NewWipeService(store),
		now:           time.Now,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) nowDay() string {
	return services.FormatDay(handler.now())
}

// Today returns everything the home surface loads at once: today's
// workouts, today's check-in (if any) and the current settings.
func (handler *Handler) Today(c *fiber.Ctx) error {
	today := handler.nowDay()

	workouts, err := handler.repositories.Workouts.ListForDate(c.Context(), today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}

	checkIn, hasCheckIn, err := handler.repositories.CheckIns.TodayCheckIn(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-in")
	}

	settings, err := handler.repositories.Settings.Get(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	payload := fiber.Map{
		"date":     today,
		"workouts": workouts,
		"settings": settings,
	}
	if hasCheckIn {
		payload["checkIn"] = checkIn
	}
	return c.JSON(payload)
}
