package services

import (
	"encoding/json"
	"log"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/pkg/rabbitmq"
)

const dateLayout = "2006-01-02"

// WorkoutService handles business logic for workout entries.
type WorkoutService struct {
	repo     repositories.WorkoutRepository
	mqClient *rabbitmq.Client
	now      func() time.Time
}

// NewWorkoutService creates a new WorkoutService. mqClient may be nil to
// disable event publishing. now may be nil to use the wall clock; tests
// inject a fixed clock.
func NewWorkoutService(repo repositories.WorkoutRepository, mqClient *rabbitmq.Client, now func() time.Time) *WorkoutService {
	if now == nil {
		now = time.Now
	}
	return &WorkoutService{
		repo:     repo,
		mqClient: mqClient,
		now:      now,
	}
}

// LogWorkout records a set for the user. An empty date means "today".
func (s *WorkoutService) LogWorkout(userID uint, date string, workoutDay int, exerciseName string, weight float64) (*models.WorkoutEntry, error) {
	if date == "" {
		date = s.now().Format(dateLayout)
	}

	entry := &models.WorkoutEntry{
		UserID:       userID,
		Date:         date,
		WorkoutDay:   workoutDay,
		ExerciseName: exerciseName,
		Weight:       weight,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"event":         "workout.logged",
			"workout_id":    entry.ID,
			"user_id":       entry.UserID,
			"date":          entry.Date,
			"workout_day":   entry.WorkoutDay,
			"exercise_name": entry.ExerciseName,
			"weight":        entry.Weight,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal workout event: %v", err)
		} else if err := s.mqClient.Publish(rabbitmq.WorkoutEventsQueue, body); err != nil {
			log.Printf("Warning: failed to publish workout event for entry %d: %v", entry.ID, err)
		}
	}

	return entry, nil
}

// ListForDate returns the user's entries for a date, defaulting to today.
func (s *WorkoutService) ListForDate(userID uint, date string) ([]models.WorkoutEntry, error) {
	if date == "" {
		date = s.now().Format(dateLayout)
	}
	return s.repo.ListByDate(userID, date)
}

// UpdateWeight overwrites the weight of one of the user's entries.
func (s *WorkoutService) UpdateWeight(userID, id uint, weight float64) error {
	return s.repo.UpdateWeight(userID, id, weight)
}

// Delete removes one of the user's entries.
func (s *WorkoutService) Delete(userID, id uint) error {
	return s.repo.Delete(userID, id)
}
