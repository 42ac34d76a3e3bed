package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habittracker/backend/models"
	"habittracker/backend/progress"
)

type habitBody struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Color        string         `json:"color"`
	Frequency    int            `json:"frequency"`
	DurationDays *int           `json:"duration_days"`
	IsUnlimited  bool           `json:"is_unlimited"`
	StartDate    string         `json:"start_date"`
	Stats        progress.Stats `json:"stats"`
	WindowStart  string         `json:"window_start"`
	WindowEnd    string         `json:"window_end"`
}

type habitEnvelope struct {
	Success bool      `json:"success"`
	Data    habitBody `json:"data"`
}

func createHabit(t *testing.T, token string, input map[string]interface{}) habitBody {
	t.Helper()
	var resp habitEnvelope
	status := request(t, fiber.MethodPost, "/api/habits", token, input, &resp)
	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, resp.Success)
	return resp.Data
}

func TestCreateHabit(t *testing.T) {
	auth, _ := registerUser(t)

	h := createHabit(t, auth.Token, map[string]interface{}{
		"name":          "Run",
		"duration_days": 30,
		"start_date":    "2024-01-01",
	})
	assert.NotZero(t, h.ID)
	assert.Equal(t, "Run", h.Name)
	assert.Equal(t, "blue", h.Color)
	assert.Equal(t, 1, h.Frequency)
	require.NotNil(t, h.DurationDays)
	assert.Equal(t, 30, *h.DurationDays)
	assert.Equal(t, "2024-01-01", h.StartDate)
	assert.Equal(t, progress.Stats{}, h.Stats)
}

func TestCreateHabitValidation(t *testing.T) {
	auth, _ := registerUser(t)

	cases := map[string]map[string]interface{}{
		"missing name":         {"color": "red"},
		"bad color":            {"name": "Run", "color": "teal"},
		"bad frequency":        {"name": "Run", "frequency": 3},
		"negative duration":    {"name": "Run", "duration_days": -1},
		"bad start date":       {"name": "Run", "start_date": "2024-02-30"},
		"unlimited with bound": {"name": "Run", "is_unlimited": true, "duration_days": 10},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			status := request(t, fiber.MethodPost, "/api/habits", auth.Token, input, nil)
			assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		})
	}
}

func TestHabitColors(t *testing.T) {
	auth, _ := registerUser(t)

	for _, color := range models.Colors {
		h := createHabit(t, auth.Token, map[string]interface{}{"name": "Paint", "color": color})
		assert.Equal(t, color, h.Color)
	}

	var body struct {
		Details map[string]string `json:"details"`
	}
	status := request(t, fiber.MethodPost, "/api/habits", auth.Token, map[string]interface{}{"name": "Paint", "color": "teal"}, &body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "color", body.Details["Color"])
}

func TestHabitLifecycle(t *testing.T) {
	auth, _ := registerUser(t)
	h := createHabit(t, auth.Token, map[string]interface{}{
		"name":          "Meditate",
		"color":         "purple",
		"duration_days": 5,
		"start_date":    "2024-01-01",
	})
	path := fmt.Sprintf("/api/habits/%d", h.ID)

	var got habitEnvelope
	status := request(t, fiber.MethodGet, path, auth.Token, nil, &got)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "2024-01-01", got.Data.WindowStart)
	assert.Equal(t, "2024-01-05", got.Data.WindowEnd)

	var updated habitEnvelope
	status = request(t, fiber.MethodPut, path, auth.Token, map[string]interface{}{
		"name":          "Meditate daily",
		"duration_days": 0,
		"is_unlimited":  true,
	}, &updated)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Meditate daily", updated.Data.Name)
	assert.Equal(t, "purple", updated.Data.Color)
	assert.True(t, updated.Data.IsUnlimited)
	assert.Nil(t, updated.Data.DurationDays)

	request(t, fiber.MethodGet, path, auth.Token, nil, &got)
	assert.Equal(t, "2024-01-10", got.Data.WindowEnd, "unlimited window ends today")

	var list struct {
		Data []habitBody `json:"data"`
	}
	status = request(t, fiber.MethodGet, "/api/habits", auth.Token, nil, &list)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, list.Data, 1)
	assert.Equal(t, h.ID, list.Data[0].ID)

	status = request(t, fiber.MethodDelete, path, auth.Token, nil, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	status = request(t, fiber.MethodGet, path, auth.Token, nil, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status = request(t, fiber.MethodDelete, path, auth.Token, nil, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHabitsAreScopedToOwner(t *testing.T) {
	owner, _ := registerUser(t)
	other, _ := registerUser(t)
	h := createHabit(t, owner.Token, map[string]interface{}{"name": "Private"})
	path := fmt.Sprintf("/api/habits/%d", h.ID)

	assert.Equal(t, fiber.StatusNotFound, request(t, fiber.MethodGet, path, other.Token, nil, nil))
	assert.Equal(t, fiber.StatusNotFound, request(t, fiber.MethodPut, path, other.Token, map[string]interface{}{"name": "Mine"}, nil))
	assert.Equal(t, fiber.StatusNotFound, request(t, fiber.MethodDelete, path, other.Token, nil, nil))
	assert.Equal(t, fiber.StatusNotFound, request(t, fiber.MethodGet, path+"/calendar", other.Token, nil, nil))

	var list struct {
		Data []habitBody `json:"data"`
	}
	request(t, fiber.MethodGet, "/api/habits", other.Token, nil, &list)
	assert.Empty(t, list.Data)

	assert.Equal(t, fiber.StatusOK, request(t, fiber.MethodGet, path, owner.Token, nil, nil))
}
