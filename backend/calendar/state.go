// Package calendar holds the per-day state machine behind the habit calendar,
// the JSON contract of the calendar endpoints and a client-side Controller
// that drives a month of days through that contract.
package calendar

import (
	"fmt"

	"habittracker/backend/progress"
)

// DayState is the status of one calendar day.
type DayState string

const (
	StateNone    DayState = "none"
	StateDone    DayState = "done"
	StateNotDone DayState = "not_done"
)

// legacyNotDone is the spelling older clients send.
const legacyNotDone = "not-done"

// Next returns the state a click moves to: none, done, not_done, none.
func (s DayState) Next() DayState {
	switch s {
	case StateNone:
		return StateDone
	case StateDone:
		return StateNotDone
	default:
		return StateNone
	}
}

func (s DayState) Valid() bool {
	return s == StateNone || s == StateDone || s == StateNotDone
}

// ParseDayState accepts the canonical names and the legacy "not-done".
func ParseDayState(s string) (DayState, error) {
	if s == legacyNotDone {
		return StateNotDone, nil
	}
	st := DayState(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown day state %q", s)
	}
	return st, nil
}

// StateOf maps a stored record to its day state. A nil record is unmarked.
func StateOf(done *bool) DayState {
	switch {
	case done == nil:
		return StateNone
	case *done:
		return StateDone
	default:
		return StateNotDone
	}
}

// UpdateRequest is the body of a calendar update.
type UpdateRequest struct {
	Day    int    `json:"day" validate:"required,min=1,max=31"`
	Action string `json:"action" validate:"required,oneof=done not_done not-done none"`
	Month  int    `json:"month" validate:"required,min=1,max=12"`
	Year   int    `json:"year" validate:"required,min=1,max=9999"`
}

const (
	StatusSuccess = "success"
	StatusFailed  = "error"
)

// UpdateResponse is the reply to an UpdateRequest.
type UpdateResponse struct {
	Status   string          `json:"status"`
	NewState DayState        `json:"new_state,omitempty"`
	Stats    *progress.Stats `json:"stats,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// DayView is one rendered day of a month.
type DayView struct {
	Day         int      `json:"day"`
	State       DayState `json:"state"`
	Interactive bool     `json:"interactive"`
}

type MonthRef struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// MonthView is the authoritative rendering of one habit month.
type MonthView struct {
	HabitID   uint   `json:"habit_id"`
	HabitName string `json:"habit_name"`
	Color     string `json:"color"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	// FirstWeekday is the weekday of day 1, Monday = 0.
	FirstWeekday int            `json:"first_weekday"`
	Today        int            `json:"today"`
	Days         []DayView      `json:"days"`
	Prev         MonthRef       `json:"prev_month"`
	Next         MonthRef       `json:"next_month"`
	Stats        progress.Stats `json:"stats"`
}

// PrevNextMonth returns the neighbouring months of (month, year).
func PrevNextMonth(month, year int) (MonthRef, MonthRef) {
	prev := MonthRef{Month: month - 1, Year: year}
	if prev.Month < 1 {
		prev = MonthRef{Month: 12, Year: year - 1}
	}
	next := MonthRef{Month: month + 1, Year: year}
	if next.Month > 12 {
		next = MonthRef{Month: 1, Year: year + 1}
	}
	return prev, next
}
