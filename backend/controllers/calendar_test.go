package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habittracker/backend/calendar"
	"habittracker/backend/models"
	"habittracker/backend/progress"
)

func postDay(t *testing.T, token string, habitID uint, req calendar.UpdateRequest) (int, calendar.UpdateResponse) {
	t.Helper()
	var resp calendar.UpdateResponse
	status := request(t, fiber.MethodPost, fmt.Sprintf("/api/habits/%d/calendar", habitID), token, req, &resp)
	return status, resp
}

func calendarDone(day int) calendar.UpdateRequest {
	return calendar.UpdateRequest{Day: day, Action: "done", Month: 1, Year: 2024}
}

func TestCalendarUpdateDay(t *testing.T) {
	auth, _ := registerUser(t)
	h := createHabit(t, auth.Token, map[string]interface{}{"name": "Stretch", "start_date": "2024-01-01"})

	for day, action := range map[int]string{1: "done", 2: "done", 3: "not_done"} {
		status, resp := postDay(t, auth.Token, h.ID, calendar.UpdateRequest{Day: day, Action: action, Month: 1, Year: 2024})
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, calendar.StatusSuccess, resp.Status)
		require.Equal(t, calendar.DayState(action), resp.NewState)
	}

	status, resp := postDay(t, auth.Token, h.ID, calendar.UpdateRequest{Day: 4, Action: "done", Month: 1, Year: 2024})
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, progress.Stats{CurrentStreak: 1, BestStreak: 2, Score: 75}, *resp.Stats)

	status, resp = postDay(t, auth.Token, h.ID, calendar.UpdateRequest{Day: 4, Action: "none", Month: 1, Year: 2024})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, calendar.StateNone, resp.NewState)
	assert.Equal(t, progress.Stats{CurrentStreak: 0, BestStreak: 2, Score: 67}, *resp.Stats)
}

func TestCalendarLegacyNotDoneAction(t *testing.T) {
	auth, _ := registerUser(t)
	h := createHabit(t, auth.Token, map[string]interface{}{"name": "Floss", "start_date": "2024-01-01"})

	status, resp := postDay(t, auth.Token, h.ID, calendar.UpdateRequest{Day: 2, Action: "not-done", Month: 1, Year: 2024})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, calendar.StateNotDone, resp.NewState)
}

func TestCalendarRejections(t *testing.T) {
	auth, _ := registerUser(t)
	h := createHabit(t, auth.Token, map[string]interface{}{
		"name":          "Swim",
		"start_date":    "2024-01-02",
		"duration_days": 5,
	})

	cases := map[string]calendar.UpdateRequest{
		"before start":   {Day: 1, Action: "done", Month: 1, Year: 2024},
		"after duration": {Day: 7, Action: "done", Month: 1, Year: 2024},
		"invalid date":   {Day: 30, Action: "done", Month: 2, Year: 2024},
		"unknown action": {Day: 3, Action: "maybe", Month: 1, Year: 2024},
		"missing day":    {Action: "done", Month: 1, Year: 2024},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			status, resp := postDay(t, auth.Token, h.ID, req)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, calendar.StatusFailed, resp.Status)
			assert.NotEmpty(t, resp.Message)
			assert.Nil(t, resp.Stats)
		})
	}

	var n int64
	require.NoError(t, db.Model(&models.HabitStatus{}).Where("habit_id = ?", h.ID).Count(&n).Error)
	assert.Zero(t, n)

	status, resp := postDay(t, auth.Token, h.ID+1000, calendar.UpdateRequest{Day: 3, Action: "done", Month: 1, Year: 2024})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, calendar.StatusFailed, resp.Status)

	status, _ = postDay(t, "", h.ID, calendar.UpdateRequest{Day: 3, Action: "done", Month: 1, Year: 2024})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCalendarMonth(t *testing.T) {
	auth, _ := registerUser(t)
	h := createHabit(t, auth.Token, map[string]interface{}{"name": "Journal", "start_date": "2024-01-05"})
	postDay(t, auth.Token, h.ID, calendar.UpdateRequest{Day: 5, Action: "done", Month: 1, Year: 2024})

	var resp struct {
		Data calendar.MonthView `json:"data"`
	}
	status := request(t, fiber.MethodGet, fmt.Sprintf("/api/habits/%d/calendar?year=2024&month=1", h.ID), auth.Token, nil, &resp)
	require.Equal(t, fiber.StatusOK, status)

	view := resp.Data
	assert.Equal(t, h.ID, view.HabitID)
	assert.Equal(t, "Journal", view.HabitName)
	assert.Equal(t, 10, view.Today)
	require.Len(t, view.Days, 31)
	assert.False(t, view.Days[3].Interactive)
	assert.True(t, view.Days[4].Interactive)
	assert.Equal(t, calendar.StateDone, view.Days[4].State)
	assert.Equal(t, 100, view.Stats.Score)

	status = request(t, fiber.MethodGet, fmt.Sprintf("/api/habits/%d/calendar?month=13", h.ID), auth.Token, nil, &resp)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, resp.Data.Month, "invalid month falls back to the current one")
}

func TestProgressOverview(t *testing.T) {
	auth, _ := registerUser(t)
	a := createHabit(t, auth.Token, map[string]interface{}{"name": "A", "start_date": "2024-01-01"})
	createHabit(t, auth.Token, map[string]interface{}{"name": "B", "start_date": "2024-01-01"})
	postDay(t, auth.Token, a.ID, calendar.UpdateRequest{Day: 9, Action: "done", Month: 1, Year: 2024})
	postDay(t, auth.Token, a.ID, calendar.UpdateRequest{Day: 10, Action: "done", Month: 1, Year: 2024})

	var overview models.ProgressOverview
	status := request(t, fiber.MethodGet, "/api/progress/overview", auth.Token, nil, &overview)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, overview.TotalHabits)
	assert.Equal(t, 2, overview.TopCurrentStreak)
	assert.InDelta(t, 50.0, overview.AverageScore, 0.001)

	var monthly struct {
		Progress []models.MonthlyProgress `json:"progress"`
	}
	status = request(t, fiber.MethodGet, "/api/progress", auth.Token, nil, &monthly)
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, monthly.Progress)
	assert.EqualValues(t, 2, monthly.Progress[0].DoneDays)
}
