package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fittrack/internal/models"
)

func (handler *Handler) ListCheckIns(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" && to == "" {
		checkIns, err := handler.repositories.CheckIns.List(c.Context())
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load check-ins")
		}
		return c.JSON(checkIns)
	}

	if !validISODate(from) || !validISODate(to) {
		return apiError(c, fiber.StatusBadRequest, "from and to must be ISO dates")
	}
	checkIns, err := handler.repositories.CheckIns.ListInRange(c.Context(), from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}
	return c.JSON(checkIns)
}

// TodayCheckIn answers 404 when no check-in exists for today; absence
// is an expected state, not a failure.
func (handler *Handler) TodayCheckIn(c *fiber.Ctx) error {
	checkIn, found, err := handler.repositories.CheckIns.TodayCheckIn(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-in")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no check-in for today")
	}
	return c.JSON(checkIn)
}

func (handler *Handler) CreateCheckIn(c *fiber.Ctx) error {
	input := checkInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := input.validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	checkIn, err := handler.repositories.CheckIns.Add(c.Context(), models.CheckIn{
		Date:         input.Date,
		Mood:         input.Mood,
		EnergyLevel:  input.EnergyLevel,
		SleepQuality: input.SleepQuality,
		Notes:        input.Notes,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save check-in")
	}
	return c.Status(fiber.StatusCreated).JSON(checkIn)
}
