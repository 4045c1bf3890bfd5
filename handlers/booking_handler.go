package handlers

import (
	"errors"

	"github.com/codeclinic/code_clinic/middleware"
	"github.com/codeclinic/code_clinic/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type BookRequest struct {
	SlotID string `json:"slot_id" validate:"required,uuid"`
}

func (h *BookingHandler) Book(c *fiber.Ctx) error {
	account := middleware.CurrentAccount(c)

	var req BookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slotID, _ := uuid.Parse(req.SlotID)

	if _, err := h.bookings.Book(c.UserContext(), account.ID, slotID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found"})
		case errors.Is(err, services.ErrSlotUnavailable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slot is not available"})
		case errors.Is(err, services.ErrSelfBooking):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot book your own volunteer slot"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to book slot"})
		}
	}

	return c.JSON(fiber.Map{"message": "Booking successful"})
}

func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	account := middleware.CurrentAccount(c)

	views, err := h.bookings.ListMine(c.UserContext(), account.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list bookings"})
	}
	return c.JSON(views)
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	account := middleware.CurrentAccount(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if err := h.bookings.Cancel(c.UserContext(), account.ID, bookingID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		case errors.Is(err, services.ErrUnauthorized):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
		}
	}

	return c.JSON(fiber.Map{"message": "Booking cancelled successfully"})
}
