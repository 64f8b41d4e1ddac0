package handlers

import (
	"fittrack/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SplitHandler serves the static workout split catalog. No auth: the
// catalog is identical for every user.
type SplitHandler struct{}

// NewSplitHandler creates a new SplitHandler.
func NewSplitHandler() *SplitHandler {
	return &SplitHandler{}
}

// RegisterRoutes registers the split catalog route.
func (h *SplitHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/api/workout-splits", h.HandleGetSplits)
}

// HandleGetSplits returns the weekday -> split mapping.
func (h *SplitHandler) HandleGetSplits(c *fiber.Ctx) error {
	return c.JSON(models.WorkoutSplits)
}
