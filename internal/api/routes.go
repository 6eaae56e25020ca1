package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/today", handler.Today)

	workouts := api.Group("/workouts")
	workouts.Get("", handler.ListWorkouts)
	workouts.Get("/today", handler.TodayWorkouts)
	workouts.Post("", handler.CreateWorkout)
	workouts.Delete("/:id", handler.DeleteWorkout)

	checkIns := api.Group("/checkins")
	checkIns.Get("", handler.ListCheckIns)
	checkIns.Get("/today", handler.TodayCheckIn)
	checkIns.Post("", handler.CreateCheckIn)

	settings := api.Group("/settings")
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.PutSettings)

	stats := api.Group("/stats")
	stats.Get("/overview", handler.GetStatsOverview)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("", handler.ExportReport)

	api.Post("/wipe", handler.WipeAll)
}
