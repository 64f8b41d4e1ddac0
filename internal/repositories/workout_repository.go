package repositories

import "fittrack/internal/models"

// WorkoutRepository defines the interface for workout entry data access.
// Every operation is scoped to the owning user; an id that exists but
// belongs to someone else behaves exactly like one that never existed.
type WorkoutRepository interface {
	Create(entry *models.WorkoutEntry) error
	ListByDate(userID uint, date string) ([]models.WorkoutEntry, error)
	UpdateWeight(userID, id uint, weight float64) error
	Delete(userID, id uint) error
}
