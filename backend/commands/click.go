package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"habittracker/backend/calendar"
)

func clickCmd() *cobra.Command {
	var (
		server  string
		token   string
		habitID uint
		date    string
		times   int
		timeout time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "click",
		Short: "Cycle one calendar day of a habit on a running server",
		Long: `Cycle one calendar day of a habit on a running server.

Each click moves the day none -> done -> not_done -> none. The day and the
statistics shown are the values confirmed by the server.

Examples:
  habittracker click --habit 3 --date 2024-01-04 --token $TOKEN
  habittracker click --habit 3 --times 3        # today, full cycle
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = os.Getenv("HABIT_TOKEN")
			}
			day := time.Now()
			if date != "" {
				var err error
				if day, err = time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			logger := log.New(io.Discard, "", 0)
			if verbose {
				logger = log.New(cmd.ErrOrStderr(), "[click] ", log.LstdFlags)
			}

			transport := calendar.NewHTTPTransport(server, token)
			transport.Timeout = timeout

			ctrl, err := calendar.Load(cmd.Context(), transport, habitID, day.Year(), int(day.Month()), logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", day.Format("2006-01-02"), ctrl.State(day.Day()))
			for i := 0; i < times; i++ {
				state, err := ctrl.Click(cmd.Context(), day.Day())
				if err != nil {
					return err
				}
				stats := ctrl.Stats()
				fmt.Fprintf(out, "-> %s  current=%d best=%d score=%d%%\n",
					state, stats.CurrentStreak, stats.BestStreak, stats.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "Base URL of the habit tracker API")
	cmd.Flags().StringVar(&token, "token", "", "JWT token (defaults to $HABIT_TOKEN)")
	cmd.Flags().UintVar(&habitID, "habit", 0, "Habit ID")
	cmd.Flags().StringVar(&date, "date", "", "Day to click, YYYY-MM-DD (defaults to today)")
	cmd.Flags().IntVar(&times, "times", 1, "Number of clicks")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-request timeout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log failed requests to stderr")
	_ = cmd.MarkFlagRequired("habit")

	return cmd
}
