package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"habittracker/backend/models"
)

// StatsRepository keeps the latest stats snapshot per habit.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Save(ctx context.Context, stats *models.HabitStats) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_streak", "best_streak", "score", "computed_at"}),
	}).Create(stats).Error
	if err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// FindByHabitIDs returns the snapshots that exist, keyed by habit id.
func (r *StatsRepository) FindByHabitIDs(ctx context.Context, habitIDs []uint) (map[uint]models.HabitStats, error) {
	out := make(map[uint]models.HabitStats, len(habitIDs))
	if len(habitIDs) == 0 {
		return out, nil
	}
	var rows []models.HabitStats
	if err := r.db.WithContext(ctx).Where("habit_id IN ?", habitIDs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find stats: %w", err)
	}
	for _, row := range rows {
		out[row.HabitID] = row
	}
	return out, nil
}
