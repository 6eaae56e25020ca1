package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fittrack/internal/models"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.repositories.Settings.Get(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(settings)
}

func (handler *Handler) PutSettings(c *fiber.Ctx) error {
	input := settingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := input.validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	settings := models.UserSettings{
		DisplayName:          input.DisplayName,
		WeeklyGoal:           input.WeeklyGoal,
		ReminderEnabled:      input.ReminderEnabled,
		ReminderTime:         input.ReminderTime,
		NotificationsEnabled: input.NotificationsEnabled,
	}
	if err := handler.repositories.Settings.Put(c.Context(), settings); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return c.JSON(settings)
}
