package services

import (
	"errors"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// DefaultIntakeLiters is added when a request omits the liters field,
// matching one glass of water.
const DefaultIntakeLiters = 0.2

// WaterService handles business logic for daily water intake.
type WaterService struct {
	repo repositories.WaterRepository
	now  func() time.Time
}

// NewWaterService creates a new WaterService. now may be nil to use the
// wall clock.
func NewWaterService(repo repositories.WaterRepository, now func() time.Time) *WaterService {
	if now == nil {
		now = time.Now
	}
	return &WaterService{
		repo: repo,
		now:  now,
	}
}

// AddIntake adds to the user's running total for a date. A nil liters
// means the caller omitted the field and gets the default increment; an
// empty date means "today".
func (s *WaterService) AddIntake(userID uint, date string, liters *float64) error {
	if date == "" {
		date = s.now().Format(dateLayout)
	}
	amount := DefaultIntakeLiters
	if liters != nil {
		amount = *liters
	}
	return s.repo.AddIntake(userID, date, amount)
}

// GetForDate returns the user's entry for a date. Days with no logged
// intake yield a synthetic zero-liters record, never an error.
func (s *WaterService) GetForDate(userID uint, date string) (*models.WaterEntry, error) {
	if date == "" {
		date = s.now().Format(dateLayout)
	}
	entry, err := s.repo.GetByDate(userID, date)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.WaterEntry{Date: date, Liters: 0.0}, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateLiters overwrites the total of one of the user's entries.
func (s *WaterService) UpdateLiters(userID, id uint, liters float64) error {
	return s.repo.UpdateLiters(userID, id, liters)
}

// Delete removes one of the user's entries.
func (s *WaterService) Delete(userID, id uint) error {
	return s.repo.Delete(userID, id)
}
