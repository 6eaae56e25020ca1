package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fittrack/internal/services"
)

// GetStatsOverview builds the progress payload for a period selector
// (week by default).
func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	period := c.Query("period", string(services.PeriodWeek))
	if !services.IsValidPeriod(period) {
		return apiError(c, fiber.StatusBadRequest, "period must be week, month or all")
	}

	overview, err := handler.statsService.BuildOverview(c.Context(), services.Period(period), handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(overview)
}
