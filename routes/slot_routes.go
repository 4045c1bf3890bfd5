package routes

import (
	"github.com/codeclinic/code_clinic/handlers"
	"github.com/codeclinic/code_clinic/middleware"
	"github.com/gofiber/fiber/v2"
)

func SlotRoutes(app *fiber.App, h *handlers.SlotHandler) {
	api := app.Group("/api", middleware.RequireSession())
	api.Get("/slots", h.ListAvailable)

	volunteer := api.Group("/volunteer", middleware.VolunteerRequired())
	volunteer.Post("/slots", h.Publish)
}
