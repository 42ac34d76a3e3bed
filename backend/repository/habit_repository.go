package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"habittracker/backend/models"
)

// HabitRepository handles CRUD for habits. Every lookup is scoped to the owner.
type HabitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

func (r *HabitRepository) Create(ctx context.Context, habit *models.Habit) error {
	if err := r.db.WithContext(ctx).Create(habit).Error; err != nil {
		return fmt.Errorf("create habit: %w", err)
	}
	return nil
}

func (r *HabitRepository) ListByUser(ctx context.Context, userID uint) ([]models.Habit, error) {
	var habits []models.Habit
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("id").
		Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

// ListAll returns every live habit, used by background refreshes.
func (r *HabitRepository) ListAll(ctx context.Context) ([]models.Habit, error) {
	var habits []models.Habit
	if err := r.db.WithContext(ctx).Order("id").Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("list all habits: %w", err)
	}
	return habits, nil
}

// FindByID returns gorm.ErrRecordNotFound when the habit does not exist or
// belongs to someone else.
func (r *HabitRepository) FindByID(ctx context.Context, userID, habitID uint) (*models.Habit, error) {
	var habit models.Habit
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, habitID).First(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *HabitRepository) Save(ctx context.Context, habit *models.Habit) error {
	if err := r.db.WithContext(ctx).Save(habit).Error; err != nil {
		return fmt.Errorf("save habit: %w", err)
	}
	return nil
}

// Delete soft-deletes the habit and drops its records and stats snapshot.
func (r *HabitRepository) Delete(ctx context.Context, userID, habitID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id = ?", userID, habitID).Delete(&models.Habit{})
		if res.Error != nil {
			return fmt.Errorf("delete habit: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.HabitStatus{}).Error; err != nil {
			return fmt.Errorf("delete habit statuses: %w", err)
		}
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.HabitStats{}).Error; err != nil {
			return fmt.Errorf("delete habit stats: %w", err)
		}
		return nil
	})
}
