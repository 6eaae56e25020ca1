package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fittrack/internal/models"
)

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" && to == "" {
		workouts, err := handler.repositories.Workouts.List(c.Context())
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
		}
		return c.JSON(workouts)
	}

	if !validISODate(from) || !validISODate(to) {
		return apiError(c, fiber.StatusBadRequest, "from and to must be ISO dates")
	}
	workouts, err := handler.repositories.Workouts.ListInRange(c.Context(), from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(workouts)
}

func (handler *Handler) TodayWorkouts(c *fiber.Ctx) error {
	today := handler.nowDay()
	workouts, err := handler.repositories.Workouts.ListForDate(c.Context(), today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(workouts)
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	input := workoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := input.validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	workout, err := handler.repositories.Workouts.Add(c.Context(), models.Workout{
		Date:         input.Date,
		ExerciseType: input.ExerciseType,
		Duration:     input.Duration,
		Intensity:    input.Intensity,
		Notes:        input.Notes,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save workout")
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// DeleteWorkout removes by id. Deleting an id that does not exist is a
// no-op and still answers 204.
func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apiError(c, fiber.StatusBadRequest, "missing workout id")
	}
	if err := handler.repositories.Workouts.Remove(c.Context(), id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete workout")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
