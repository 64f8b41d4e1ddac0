package repositories

import (
	"errors"
	"fmt"
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMWaterRepository is a GORM implementation of WaterRepository.
type GORMWaterRepository struct {
	db *gorm.DB
}

// NewGORMWaterRepository creates a new instance of GORMWaterRepository.
func NewGORMWaterRepository(db *gorm.DB) *GORMWaterRepository {
	return &GORMWaterRepository{
		db: db,
	}
}

// AddIntake performs the additive upsert for (userID, date) as a single
// INSERT .. ON CONFLICT statement against the unique (user_id, date)
// index. The database applies the increment, so concurrent adds cannot
// read a stale total, and concurrent first inserts for a day take the
// conflict path instead of failing on the index.
func (r *GORMWaterRepository) AddIntake(userID uint, date string, liters float64) error {
	entry := &models.WaterEntry{
		UserID: userID,
		Date:   date,
		Liters: liters,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"liters":     gorm.Expr("water.liters + excluded.liters"),
			"updated_at": time.Now(),
		}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to add water intake: %w", err)
	}
	return nil
}

// GetByDate returns the user's entry for one date, or ErrNotFound when
// nothing has been logged that day.
func (r *GORMWaterRepository) GetByDate(userID uint, date string) (*models.WaterEntry, error) {
	var entry models.WaterEntry
	if err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get water entry: %w", err)
	}
	return &entry, nil
}

// UpdateLiters overwrites the total for one entry (absolute, not additive).
func (r *GORMWaterRepository) UpdateLiters(userID, id uint, liters float64) error {
	res := r.db.Model(&models.WaterEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("liters", liters)
	if res.Error != nil {
		return fmt.Errorf("failed to update water entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one entry with the usual ownership contract.
func (r *GORMWaterRepository) Delete(userID, id uint) error {
	res := r.db.Delete(&models.WaterEntry{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete water entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
