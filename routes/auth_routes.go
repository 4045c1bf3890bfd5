package routes

import (
	"github.com/codeclinic/code_clinic/handlers"
	"github.com/codeclinic/code_clinic/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Get("/logout", middleware.RequireSession(), h.Logout)
	app.Get("/dashboard", middleware.RequireSession(), h.Dashboard)
}
