package models

import "time"

// WorkoutEntry is a single logged set: which exercise was done on which
// day of the split, at what weight. Dates are ISO YYYY-MM-DD strings.
type WorkoutEntry struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index:idx_workouts_user_date"`
	Date         string    `json:"date" gorm:"type:date;not null;index:idx_workouts_user_date"`
	WorkoutDay   int       `json:"workout_day" gorm:"not null"`
	ExerciseName string    `json:"exercise_name" gorm:"type:varchar(100);not null"`
	Weight       float64   `json:"weight" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the table name aligned with the provisioned schema.
func (WorkoutEntry) TableName() string { return "workouts" }
