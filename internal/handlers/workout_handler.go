package handlers

import (
	"errors"
	"log"

	"fittrack/internal/repositories"
	"fittrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WorkoutHandler handles HTTP requests for workout entries.
type WorkoutHandler struct {
	service  *services.WorkoutService
	validate *validator.Validate
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(service *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the workout routes. The router must already
// carry the session middleware.
func (h *WorkoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/workout", h.HandleLogWorkout)
	router.Get("/workouts", h.HandleListWorkouts)
	router.Put("/workout/:id", h.HandleUpdateWorkout)
	router.Delete("/workout/:id", h.HandleDeleteWorkout)
}

// LogWorkoutRequest is the request body for logging a set.
type LogWorkoutRequest struct {
	Date         string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	WorkoutDay   int     `json:"workout_day" validate:"required,min=1,max=7"`
	ExerciseName string  `json:"exercise_name" validate:"required"`
	Weight       float64 `json:"weight" validate:"required,gt=0"`
}

// UpdateWeightRequest is the request body for updating a logged weight.
type UpdateWeightRequest struct {
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

// HandleLogWorkout records a new workout entry for the session user.
func (h *WorkoutHandler) HandleLogWorkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req LogWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	entry, err := h.service.LogWorkout(userID, req.Date, req.WorkoutDay, req.ExerciseName, req.Weight)
	if err != nil {
		log.Printf("Error logging workout for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not add workout",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Workout added successfully",
		"id":      entry.ID,
	})
}

// HandleListWorkouts returns the session user's entries for one date
// (query param, defaults to today), ordered by workout day and exercise.
func (h *WorkoutHandler) HandleListWorkouts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	entries, err := h.service.ListForDate(userID, c.Query("date"))
	if err != nil {
		log.Printf("Error listing workouts for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve workouts",
		})
	}
	return c.JSON(entries)
}

// HandleUpdateWorkout overwrites the weight of one entry.
func (h *WorkoutHandler) HandleUpdateWorkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Workout not found",
		})
	}

	var req UpdateWeightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Weight is required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Weight is required",
		})
	}

	if err := h.service.UpdateWeight(userID, uint(id), req.Weight); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Workout not found",
			})
		}
		log.Printf("Error updating workout %d for user %d: %v", id, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update workout",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Workout updated successfully",
	})
}

// HandleDeleteWorkout removes one entry.
func (h *WorkoutHandler) HandleDeleteWorkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Workout not found",
		})
	}

	if err := h.service.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Workout not found",
			})
		}
		log.Printf("Error deleting workout %d for user %d: %v", id, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete workout",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Workout deleted successfully",
	})
}
