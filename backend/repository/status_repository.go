package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"habittracker/backend/models"
)

// StatusRepository stores per-day completion records.
type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Upsert writes done for (user, habit, date), replacing an existing record.
func (r *StatusRepository) Upsert(ctx context.Context, userID, habitID uint, date string, done bool) error {
	status := models.HabitStatus{
		UserID:  userID,
		HabitID: habitID,
		Date:    date,
		Done:    done,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"done": done, "updated_at": time.Now()}),
	}).Create(&status).Error
	if err != nil {
		return fmt.Errorf("upsert status: %w", err)
	}
	return nil
}

// Clear removes the record so the day reads as unmarked. Clearing an
// unmarked day is a no-op.
func (r *StatusRepository) Clear(ctx context.Context, userID, habitID uint, date string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ? AND date = ?", userID, habitID, date).
		Delete(&models.HabitStatus{}).Error; err != nil {
		return fmt.Errorf("clear status: %w", err)
	}
	return nil
}

// ListByHabit returns the full history of a habit ordered by date.
func (r *StatusRepository) ListByHabit(ctx context.Context, habitID uint) ([]models.HabitStatus, error) {
	var statuses []models.HabitStatus
	if err := r.db.WithContext(ctx).Where("habit_id = ?", habitID).
		Order("date").
		Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return statuses, nil
}

// ListBetween returns records of a habit with from <= date <= to.
func (r *StatusRepository) ListBetween(ctx context.Context, habitID uint, from, to string) ([]models.HabitStatus, error) {
	var statuses []models.HabitStatus
	if err := r.db.WithContext(ctx).
		Where("habit_id = ? AND date BETWEEN ? AND ?", habitID, from, to).
		Order("date").
		Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("list statuses between: %w", err)
	}
	return statuses, nil
}

// ListUserBetween returns every record of a user within the date range.
func (r *StatusRepository) ListUserBetween(ctx context.Context, userID uint, from, to string) ([]models.HabitStatus, error) {
	var statuses []models.HabitStatus
	if err := r.db.WithContext(ctx).
		Joins("JOIN habits ON habits.id = habit_statuses.habit_id AND habits.deleted_at IS NULL").
		Where("habit_statuses.user_id = ? AND habit_statuses.date BETWEEN ? AND ?", userID, from, to).
		Order("habit_statuses.date").
		Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("list user statuses: %w", err)
	}
	return statuses, nil
}
