package routes

import (
	"github.com/codeclinic/code_clinic/handlers"
	"github.com/codeclinic/code_clinic/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler) {
	api := app.Group("/api", middleware.RequireSession())
	api.Post("/book", h.Book)
	api.Get("/bookings", h.ListMine)
	api.Delete("/bookings/:bookingId", h.Cancel)
}
