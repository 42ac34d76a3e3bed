package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs background jobs on wall-clock schedules.
type Scheduler struct {
	cron   *cron.Cron
	logger *log.Logger
}

func New(loc *time.Location, logger *log.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		logger: logger,
	}
}

// ScheduleDaily registers a job that runs every day at HH:MM.
func (s *Scheduler) ScheduleDaily(timeStr string, job func()) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, job)
}

// ScheduleStatsRefresh runs refresh daily at timeStr and logs its outcome.
func (s *Scheduler) ScheduleStatsRefresh(timeStr string, refresh func(ctx context.Context) (int, error)) (cron.EntryID, error) {
	return s.ScheduleDaily(timeStr, func() {
		n, err := refresh(context.Background())
		if err != nil {
			s.logger.Printf("stats refresh finished with errors, refreshed=%d: %v", n, err)
			return
		}
		s.logger.Printf("stats refresh done, refreshed=%d", n)
	})
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
