// Package commands wires the habit tracker's command line.
package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"habittracker/backend/config"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

// Root returns the top-level command. Running it without a subcommand
// starts the server.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "habittracker",
		Short:         "Habit tracking web service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(recomputeCmd())
	cmd.AddCommand(clickCmd())
	return cmd
}

// backend holds what server-side commands share.
type backend struct {
	cfg    *config.Config
	logger *log.Logger
	db     *gorm.DB
	svc    *services.HabitService
}

func bootstrap() (*backend, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logger := utils.InitLogger(utils.LoggerConfig{EnableColors: cfg.LogColors})

	db, err := utils.InitDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	return &backend{
		cfg:    cfg,
		logger: logger,
		db:     db,
		svc:    services.NewHabitService(db, loc, logger),
	}, nil
}
