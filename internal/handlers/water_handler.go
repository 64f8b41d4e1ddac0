package handlers

import (
	"errors"
	"log"

	"fittrack/internal/repositories"
	"fittrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WaterHandler handles HTTP requests for daily water intake.
type WaterHandler struct {
	service  *services.WaterService
	validate *validator.Validate
}

// NewWaterHandler creates a new WaterHandler.
func NewWaterHandler(service *services.WaterService) *WaterHandler {
	return &WaterHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the water routes. The router must already
// carry the session middleware.
func (h *WaterHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/water", h.HandleAddWater)
	router.Get("/water", h.HandleGetWater)
	router.Put("/water/:id", h.HandleUpdateWater)
	router.Delete("/water/:id", h.HandleDeleteWater)
}

// AddWaterRequest is the request body for logging intake. Liters is a
// pointer so an omitted field (default increment) is distinguishable
// from an explicit zero.
type AddWaterRequest struct {
	Date   string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Liters *float64 `json:"liters" validate:"omitempty,gte=0"`
}

// UpdateWaterRequest is the request body for overwriting a day's total.
type UpdateWaterRequest struct {
	Liters *float64 `json:"liters" validate:"required,gte=0"`
}

// HandleAddWater adds to the session user's total for a date.
func (h *WaterHandler) HandleAddWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req AddWaterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.AddIntake(userID, req.Date, req.Liters); err != nil {
		log.Printf("Error adding water intake for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update water intake",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Water intake updated successfully",
	})
}

// HandleGetWater returns the session user's entry for one date. A day with
// no logged intake yields a zero-liters record, not a 404.
func (h *WaterHandler) HandleGetWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	entry, err := h.service.GetForDate(userID, c.Query("date"))
	if err != nil {
		log.Printf("Error getting water intake for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve water intake",
		})
	}
	if entry.ID == 0 {
		// Synthetic record for a day with no row: only the two fields
		// that mean anything.
		return c.JSON(fiber.Map{
			"liters": entry.Liters,
			"date":   entry.Date,
		})
	}
	return c.JSON(entry)
}

// HandleUpdateWater overwrites one entry's total (absolute, not additive).
func (h *WaterHandler) HandleUpdateWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Water entry not found",
		})
	}

	var req UpdateWaterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Liters value is required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Liters value is required",
		})
	}

	if err := h.service.UpdateLiters(userID, uint(id), *req.Liters); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Water entry not found",
			})
		}
		log.Printf("Error updating water entry %d for user %d: %v", id, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update water intake",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Water intake updated successfully",
	})
}

// HandleDeleteWater removes one entry.
func (h *WaterHandler) HandleDeleteWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Water entry not found",
		})
	}

	if err := h.service.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Water entry not found",
			})
		}
		log.Printf("Error deleting water entry %d for user %d: %v", id, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete water entry",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Water entry deleted successfully",
	})
}
