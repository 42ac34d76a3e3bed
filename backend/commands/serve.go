package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"habittracker/backend/routes"
	"habittracker/backend/scheduler"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the nightly stats refresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := bootstrap()
	if err != nil {
		return err
	}

	sched := scheduler.New(b.svc.Location, b.logger)
	if _, err := sched.ScheduleStatsRefresh(b.cfg.StatsRefreshTime, b.svc.RecomputeAll); err != nil {
		return fmt.Errorf("schedule stats refresh: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	app := routes.NewApp(b.db, b.cfg, b.svc, b.logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + b.cfg.ServerPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		b.logger.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}
