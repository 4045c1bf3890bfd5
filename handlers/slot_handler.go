package handlers

import (
	"errors"
	"time"

	"github.com/codeclinic/code_clinic/middleware"
	"github.com/codeclinic/code_clinic/services"
	"github.com/gofiber/fiber/v2"
)

type SlotHandler struct {
	slots *services.SlotService
}

func NewSlotHandler(slots *services.SlotService) *SlotHandler {
	return &SlotHandler{slots: slots}
}

type PublishSlotRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Subject   string `json:"subject"`
}

func (h *SlotHandler) ListAvailable(c *fiber.Ctx) error {
	views, err := h.slots.ListAvailable(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list slots"})
	}
	return c.JSON(views)
}

func (h *SlotHandler) Publish(c *fiber.Ctx) error {
	account := middleware.CurrentAccount(c)

	var req PublishSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_time must be RFC 3339"})
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_time must be RFC 3339"})
	}

	if _, err := h.slots.Publish(c.UserContext(), account.ID, start, end, req.Subject); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrUnauthorized):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden: volunteer access required"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create slot"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Slot added successfully"})
}
