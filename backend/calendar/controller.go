package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"habittracker/backend/progress"
)

// Transport carries calendar requests to the server.
type Transport interface {
	UpdateDay(ctx context.Context, habitID uint, req UpdateRequest) (*UpdateResponse, error)
	MonthView(ctx context.Context, habitID uint, year, month int) (*MonthView, error)
}

type dayCell struct {
	state       DayState
	interactive bool
}

// Controller tracks the confirmed state of every day of one habit month.
// State only changes from successful server responses; clicks are handled
// one at a time.
type Controller struct {
	mu        sync.Mutex
	habitID   uint
	year      int
	month     int
	days      map[int]*dayCell
	stats     progress.Stats
	transport Transport
	logger    *log.Logger
}

// NewController builds a controller from a server-rendered month.
// A nil logger discards diagnostics.
func NewController(view *MonthView, transport Transport, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Controller{
		habitID:   view.HabitID,
		year:      view.Year,
		month:     view.Month,
		days:      make(map[int]*dayCell, len(view.Days)),
		stats:     view.Stats,
		transport: transport,
		logger:    logger,
	}
	for _, d := range view.Days {
		state := d.State
		if !state.Valid() {
			state = StateNone
		}
		c.days[d.Day] = &dayCell{state: state, interactive: d.Interactive}
	}
	return c
}

// Load fetches a month through the transport and builds a controller for it.
func Load(ctx context.Context, transport Transport, habitID uint, year, month int, logger *log.Logger) (*Controller, error) {
	view, err := transport.MonthView(ctx, habitID, year, month)
	if err != nil {
		return nil, err
	}
	return NewController(view, transport, logger), nil
}

func (c *Controller) State(day int) DayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.days[day]; ok {
		return d.state
	}
	return StateNone
}

func (c *Controller) Interactive(day int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.days[day]
	return ok && d.interactive
}

func (c *Controller) Stats() progress.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Click advances day to its next state. The request carries the computed
// next state; the stored state becomes whatever the server confirms.
// Any failure leaves the controller unchanged.
func (c *Controller) Click(ctx context.Context, day int) (DayState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cell, ok := c.days[day]
	if !ok || !cell.interactive {
		return "", fmt.Errorf("%04d-%02d-%02d: %w", c.year, c.month, day, ErrNotInteractive)
	}

	req := UpdateRequest{
		Day:    day,
		Action: string(cell.state.Next()),
		Month:  c.month,
		Year:   c.year,
	}
	resp, err := c.transport.UpdateDay(ctx, c.habitID, req)
	if err != nil {
		c.diagnose(req, err)
		return "", err
	}
	if resp.Status != StatusSuccess {
		err := &ApplicationError{Message: resp.Message}
		c.diagnose(req, err)
		return "", err
	}
	state, err := ParseDayState(string(resp.NewState))
	if err != nil {
		err = &ApplicationError{Message: err.Error()}
		c.diagnose(req, err)
		return "", err
	}

	cell.state = state
	if resp.Stats != nil {
		c.stats = *resp.Stats
	}
	return state, nil
}

func (c *Controller) diagnose(req UpdateRequest, err error) {
	kind := "transport"
	var statusErr *StatusError
	var appErr *ApplicationError
	switch {
	case errors.As(err, &statusErr):
		kind = "http"
	case errors.As(err, &appErr):
		kind = "application"
	}
	c.logger.Printf("calendar update failed habit=%d date=%04d-%02d-%02d action=%s kind=%s: %v",
		c.habitID, req.Year, req.Month, req.Day, req.Action, kind, err)
}
