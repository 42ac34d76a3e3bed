package services

import (
	"context"
	"fmt"
	"time"

	"habittracker/backend/models"
	"habittracker/backend/progress"
)

// HabitWithStats pairs a habit with its last stats snapshot.
type HabitWithStats struct {
	Habit models.Habit
	Stats progress.Stats
}

// ListWithStats returns the user's habits with their snapshots, computing
// the ones that have none yet.
func (s *HabitService) ListWithStats(ctx context.Context, userID uint) ([]HabitWithStats, error) {
	habits, err := s.Habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	snapshots, err := s.Stats.FindByHabitIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]HabitWithStats, 0, len(habits))
	for i := range habits {
		h := &habits[i]
		snap, ok := snapshots[h.ID]
		var stats progress.Stats
		if ok {
			stats = progress.Stats{CurrentStreak: snap.CurrentStreak, BestStreak: snap.BestStreak, Score: snap.Score}
		} else if stats, err = s.ComputeStats(ctx, h); err != nil {
			return nil, err
		}
		out = append(out, HabitWithStats{Habit: *h, Stats: stats})
	}
	return out, nil
}

// Overview summarizes every habit of a user with freshly computed stats.
func (s *HabitService) Overview(ctx context.Context, userID uint) (*models.ProgressOverview, error) {
	habits, err := s.Habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	overview := &models.ProgressOverview{
		TotalHabits: len(habits),
		Habits:      make([]models.HabitProgress, 0, len(habits)),
	}
	scoreSum := 0
	for i := range habits {
		h := &habits[i]
		stats, err := s.ComputeStats(ctx, h)
		if err != nil {
			return nil, err
		}
		overview.Habits = append(overview.Habits, models.HabitProgress{
			HabitID:       h.ID,
			Name:          h.Name,
			Color:         h.Color,
			CurrentStreak: stats.CurrentStreak,
			BestStreak:    stats.BestStreak,
			Score:         stats.Score,
		})
		overview.TopCurrentStreak = max(overview.TopCurrentStreak, stats.CurrentStreak)
		overview.TopBestStreak = max(overview.TopBestStreak, stats.BestStreak)
		scoreSum += stats.Score
	}
	if len(habits) > 0 {
		overview.AverageScore = float64(scoreSum) / float64(len(habits))
	}
	return overview, nil
}

// MonthlyProgress counts done and marked days across all of a user's habits
// for the current month and the months-1 before it, newest first.
func (s *HabitService) MonthlyProgress(ctx context.Context, userID uint, months int) ([]models.MonthlyProgress, error) {
	today := s.Today()
	current := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := make([]models.MonthlyProgress, months)
	for i := 0; i < months; i++ {
		startOfMonth := current.AddDate(0, -i, 0)
		endOfMonth := startOfMonth.AddDate(0, 1, -1)

		statuses, err := s.Statuses.ListUserBetween(ctx, userID,
			startOfMonth.Format(progress.DateLayout), endOfMonth.Format(progress.DateLayout))
		if err != nil {
			return nil, fmt.Errorf("monthly progress %s: %w", startOfMonth.Format("2006-01"), err)
		}

		mp := models.MonthlyProgress{
			Month:     startOfMonth.Month(),
			Year:      startOfMonth.Year(),
			DailyDone: make(map[string]int),
		}
		for _, st := range statuses {
			mp.MarkedDays++
			if st.Done {
				mp.DoneDays++
				mp.DailyDone[st.Date]++
			}
		}
		out[i] = mp
	}
	return out, nil
}
