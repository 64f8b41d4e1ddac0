package models

import "time"

// WaterEntry is the cumulative water intake for one user on one calendar
// date. At most one row exists per (user_id, date).
type WaterEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uidx_water_user_date"`
	Date      string    `json:"date" gorm:"type:date;not null;uniqueIndex:uidx_water_user_date"`
	Liters    float64   `json:"liters" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name aligned with the provisioned schema.
func (WaterEntry) TableName() string { return "water" }
