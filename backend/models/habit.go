package models

import (
	"time"

	"gorm.io/gorm"
)

// Frequencies are informational; the calendar always works per day.
const (
	FrequencyDaily   = 1
	FrequencyWeekly  = 7
	FrequencyMonthly = 30
)

// Colors lists the accepted habit colors.
var Colors = []string{"red", "blue", "green", "yellow", "orange", "purple", "pink", "brown", "gray", "black"}

type Habit struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `json:"description"`
	Color       string `gorm:"size:10;default:blue" json:"color"`
	Frequency   int    `gorm:"default:1" json:"frequency"`
	// DurationDays bounds the habit to that many days; nil or 0 is unlimited.
	DurationDays *int `json:"duration_days"`
	IsUnlimited  bool `gorm:"default:false" json:"is_unlimited"`
	// StartDate overrides the creation date as the first day, YYYY-MM-DD.
	StartDate string `gorm:"size:10" json:"start_date,omitempty"`
}

// Duration returns the bounded length in days, 0 when unlimited.
func (h *Habit) Duration() int {
	if h.IsUnlimited || h.DurationDays == nil || *h.DurationDays <= 0 {
		return 0
	}
	return *h.DurationDays
}

// HabitStatus is the completion record of one habit for one day.
// No row means the day is unmarked.
type HabitStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_status_user_habit_date" json:"user_id"`
	HabitID   uint      `gorm:"not null;uniqueIndex:idx_status_user_habit_date;index" json:"habit_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_status_user_habit_date" json:"date"`
	Done      bool      `gorm:"not null" json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HabitStats is the last computed statistics snapshot of a habit.
type HabitStats struct {
	HabitID       uint      `gorm:"primaryKey;autoIncrement:false" json:"habit_id"`
	CurrentStreak int       `json:"current_streak"`
	BestStreak    int       `json:"best_streak"`
	Score         int       `json:"score"`
	ComputedAt    time.Time `json:"computed_at"`
}
