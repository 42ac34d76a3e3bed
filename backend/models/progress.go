package models

import "time"

type MonthlyProgress struct {
	Month      time.Month `json:"month"`
	Year       int        `json:"year"`
	DoneDays   int64      `json:"done_days"`
	MarkedDays int64      `json:"marked_days"`
	// DailyDone maps YYYY-MM-DD to the number of habits done that day.
	DailyDone map[string]int `json:"daily_done"`
}

type HabitProgress struct {
	HabitID       uint   `json:"habit_id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
	Score         int    `json:"score"`
}

type ProgressOverview struct {
	TotalHabits      int             `json:"total_habits"`
	TopCurrentStreak int             `json:"top_current_streak"`
	TopBestStreak    int             `json:"top_best_streak"`
	AverageScore     float64         `json:"average_score"`
	Habits           []HabitProgress `json:"habits"`
}

// All lists every model that is auto-migrated.
func All() []interface{} {
	return []interface{}{
		&User{},
		&LoginHistory{},
		&Habit{},
		&HabitStatus{},
		&HabitStats{},
	}
}
