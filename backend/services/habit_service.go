package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/gorm"

	"habittracker/backend/calendar"
	"habittracker/backend/metrics"
	"habittracker/backend/models"
	"habittracker/backend/progress"
	"habittracker/backend/repository"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrInvalidDate   = errors.New("invalid date")
	ErrOutsideWindow = errors.New("date is outside the habit's interactive window")
)

// HabitService ties the completion store to the progress engine.
type HabitService struct {
	Habits   *repository.HabitRepository
	Statuses *repository.StatusRepository
	Stats    *repository.StatsRepository
	Location *time.Location
	Now      func() time.Time
	Logger   *log.Logger
}

func NewHabitService(db *gorm.DB, loc *time.Location, logger *log.Logger) *HabitService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &HabitService{
		Habits:   repository.NewHabitRepository(db),
		Statuses: repository.NewStatusRepository(db),
		Stats:    repository.NewStatsRepository(db),
		Location: loc,
		Now:      time.Now,
		Logger:   logger,
	}
}

// Today is the current calendar day in the service's time zone.
func (s *HabitService) Today() time.Time {
	return progress.Day(s.Now().In(s.Location))
}

// StartDate is the explicit start override or the creation day.
func (s *HabitService) StartDate(h *models.Habit) time.Time {
	if h.StartDate != "" {
		if d, err := progress.ParseDay(h.StartDate); err == nil {
			return d
		}
	}
	return progress.Day(h.CreatedAt.In(s.Location))
}

func (s *HabitService) Window(h *models.Habit) progress.Window {
	return progress.InteractiveWindow(s.StartDate(h), h.Duration(), s.Today())
}

// Habit loads a habit owned by userID.
func (s *HabitService) Habit(ctx context.Context, userID, habitID uint) (*models.Habit, error) {
	h, err := s.Habits.FindByID(ctx, userID, habitID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find habit: %w", err)
	}
	return h, nil
}

// ResolveDate turns (year, month, day) into a calendar day, rejecting
// values that do not name a real date such as February 30.
func ResolveDate(year, month, day int) (time.Time, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

func toRecords(statuses []models.HabitStatus) []progress.Record {
	records := make([]progress.Record, 0, len(statuses))
	for _, st := range statuses {
		d, err := progress.ParseDay(st.Date)
		if err != nil {
			continue
		}
		records = append(records, progress.Record{Date: d, Done: st.Done})
	}
	return records
}

// ComputeStats recomputes the habit's statistics from its full history and
// stores them as the habit's snapshot.
func (s *HabitService) ComputeStats(ctx context.Context, h *models.Habit) (progress.Stats, error) {
	start := time.Now()
	statuses, err := s.Statuses.ListByHabit(ctx, h.ID)
	if err != nil {
		return progress.Stats{}, err
	}
	stats := progress.Compute(toRecords(statuses))
	metrics.StatsComputeDuration.Observe(time.Since(start).Seconds())

	snapshot := models.HabitStats{
		HabitID:       h.ID,
		CurrentStreak: stats.CurrentStreak,
		BestStreak:    stats.BestStreak,
		Score:         stats.Score,
		ComputedAt:    s.Now(),
	}
	if err := s.Stats.Save(ctx, &snapshot); err != nil {
		return progress.Stats{}, err
	}
	return stats, nil
}

// UpdateDay applies action to one day of a habit and returns the state the
// day ends in together with the recomputed stats. Days outside the
// interactive window are rejected without touching the store.
func (s *HabitService) UpdateDay(ctx context.Context, userID, habitID uint, year, month, day int, action calendar.DayState) (calendar.DayState, progress.Stats, error) {
	result := "error"
	defer func() {
		metrics.CalendarUpdates.WithLabelValues(string(action), result).Inc()
	}()

	h, err := s.Habit(ctx, userID, habitID)
	if err != nil {
		return "", progress.Stats{}, err
	}
	date, err := ResolveDate(year, month, day)
	if err != nil {
		result = "rejected"
		return "", progress.Stats{}, err
	}
	if w := s.Window(h); !w.Contains(date) {
		result = "rejected"
		return "", progress.Stats{}, fmt.Errorf("%w: %s", ErrOutsideWindow, date.Format(progress.DateLayout))
	}

	key := date.Format(progress.DateLayout)
	switch action {
	case calendar.StateDone:
		err = s.Statuses.Upsert(ctx, userID, h.ID, key, true)
	case calendar.StateNotDone:
		err = s.Statuses.Upsert(ctx, userID, h.ID, key, false)
	case calendar.StateNone:
		err = s.Statuses.Clear(ctx, userID, h.ID, key)
	default:
		result = "rejected"
		return "", progress.Stats{}, fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		return "", progress.Stats{}, err
	}

	stats, err := s.ComputeStats(ctx, h)
	if err != nil {
		return "", progress.Stats{}, err
	}
	result = "success"
	return action, stats, nil
}

// MonthView renders one month of a habit for the calendar.
func (s *HabitService) MonthView(ctx context.Context, userID, habitID uint, year, month int) (*calendar.MonthView, error) {
	h, err := s.Habit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	first, err := ResolveDate(year, month, 1)
	if err != nil {
		return nil, err
	}
	last := first.AddDate(0, 1, -1)

	statuses, err := s.Statuses.ListBetween(ctx, h.ID, first.Format(progress.DateLayout), last.Format(progress.DateLayout))
	if err != nil {
		return nil, err
	}
	marked := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		marked[st.Date] = st.Done
	}

	stats, err := s.ComputeStats(ctx, h)
	if err != nil {
		return nil, err
	}

	window := s.Window(h)
	today := s.Today()
	view := &calendar.MonthView{
		HabitID:      h.ID,
		HabitName:    h.Name,
		Color:        h.Color,
		Year:         year,
		Month:        month,
		MonthName:    first.Month().String(),
		FirstWeekday: (int(first.Weekday()) + 6) % 7,
		Today:        -1,
		Days:         make([]calendar.DayView, 0, last.Day()),
		Stats:        stats,
	}
	if today.Year() == year && int(today.Month()) == month {
		view.Today = today.Day()
	}
	view.Prev, view.Next = calendar.PrevNextMonth(month, year)

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		var done *bool
		if v, ok := marked[d.Format(progress.DateLayout)]; ok {
			done = &v
		}
		view.Days = append(view.Days, calendar.DayView{
			Day:         d.Day(),
			State:       calendar.StateOf(done),
			Interactive: window.Contains(d),
		})
	}
	return view, nil
}

// RecomputeAll refreshes the stats snapshot of every habit. It keeps going
// past individual failures and reports how many habits were refreshed.
func (s *HabitService) RecomputeAll(ctx context.Context) (int, error) {
	habits, err := s.Habits.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	var errs []error
	refreshed := 0
	for i := range habits {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if _, err := s.ComputeStats(ctx, &habits[i]); err != nil {
			metrics.StatsRefreshErrors.Inc()
			s.Logger.Printf("stats refresh failed habit=%d: %v", habits[i].ID, err)
			errs = append(errs, err)
			continue
		}
		metrics.StatsRefreshHabits.Inc()
		refreshed++
	}
	return refreshed, errors.Join(errs...)
}
