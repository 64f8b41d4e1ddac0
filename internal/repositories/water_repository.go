package repositories

import "fittrack/internal/models"

// WaterRepository defines the interface for water intake data access.
type WaterRepository interface {
	// AddIntake adds liters to the user's total for a date, creating the
	// row if it does not exist yet.
	AddIntake(userID uint, date string, liters float64) error
	GetByDate(userID uint, date string) (*models.WaterEntry, error)
	UpdateLiters(userID, id uint, liters float64) error
	Delete(userID, id uint) error
}
