package handler

import (
	"feline-fascination/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every handler onto the app.
func RegisterRoutes(app *fiber.App, page *PageHandler, quiz *QuizHandler, health *HealthHandler) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/healthz", health.Check)

	api := app.Group("/api")
	api.Get("/page", page.GetPage)
	api.Get("/facts/current", page.GetCurrentFact)
	api.Get("/breeds", page.GetBreeds)
	api.Get("/breeds/:name", vm.ValidateBreedName(), page.GetBreed)
	api.Get("/likes", page.GetLikes)
	api.Post("/likes", page.Like)

	sessions := api.Group("/quiz/sessions")
	sessions.Post("/", quiz.StartSession)
	sessions.Get("/:id", vm.ValidateSessionID(), quiz.GetSession)
	sessions.Delete("/:id", vm.ValidateSessionID(), quiz.EndSession)
	sessions.Post("/:id/select", vm.ValidateSessionID(), quiz.SelectOption)
	sessions.Post("/:id/confirm", vm.ValidateSessionID(), quiz.Confirm)
	sessions.Post("/:id/reset", vm.ValidateSessionID(), quiz.Reset)
}

// NewApp creates the fiber app with the shared error handler.
func NewApp(cfg fiber.Config) *fiber.App {
	cfg.ErrorHandler = middleware.ErrorHandler()
	cfg.UnescapePath = true
	return fiber.New(cfg)
}
