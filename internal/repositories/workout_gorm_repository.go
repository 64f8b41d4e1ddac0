package repositories

import (
	"fmt"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

// GORMWorkoutRepository is a GORM implementation of WorkoutRepository.
type GORMWorkoutRepository struct {
	db *gorm.DB
}

// NewGORMWorkoutRepository creates a new instance of GORMWorkoutRepository.
func NewGORMWorkoutRepository(db *gorm.DB) *GORMWorkoutRepository {
	return &GORMWorkoutRepository{
		db: db,
	}
}

// Create inserts a new workout entry.
func (r *GORMWorkoutRepository) Create(entry *models.WorkoutEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create workout entry: %w", err)
	}
	return nil
}

// ListByDate returns the user's entries for one date, ordered by
// workout day and exercise name.
func (r *GORMWorkoutRepository) ListByDate(userID uint, date string) ([]models.WorkoutEntry, error) {
	entries := make([]models.WorkoutEntry, 0)
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("workout_day, exercise_name").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workout entries: %w", err)
	}
	return entries, nil
}

// UpdateWeight overwrites the weight of one entry. The statement is
// scoped by id and owner together, so RowsAffected == 0 covers both a
// missing id and an id owned by another user.
func (r *GORMWorkoutRepository) UpdateWeight(userID, id uint, weight float64) error {
	res := r.db.Model(&models.WorkoutEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("weight", weight)
	if res.Error != nil {
		return fmt.Errorf("failed to update workout entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one entry, with the same ownership contract as UpdateWeight.
func (r *GORMWorkoutRepository) Delete(userID, id uint) error {
	res := r.db.Delete(&models.WorkoutEntry{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete workout entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
