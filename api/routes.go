package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application serving handler under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	RegisterRoutes(app, handler)
	return app
}

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/schedule/:policy", handler.Schedule)

		v1.Post("/sessions", handler.CreateSession)
		v1.Delete("/sessions/:id", handler.DeleteSession)
		v1.Get("/sessions/:id/processes", handler.ListProcesses)
		v1.Post("/sessions/:id/processes", handler.AddProcess)
		v1.Delete("/sessions/:id/processes", handler.ClearProcesses)
		v1.Put("/sessions/:id/processes/id/:pid", handler.UpdateProcessByID)
		v1.Delete("/sessions/:id/processes/id/:pid", handler.RemoveProcessByID)
		v1.Put("/sessions/:id/processes/:index", handler.UpdateProcess)
		v1.Delete("/sessions/:id/processes/:index", handler.RemoveProcess)
		v1.Get("/sessions/:id/schedule/:policy", handler.ScheduleSession)
	}
}
