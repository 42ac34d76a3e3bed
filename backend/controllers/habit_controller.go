package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"habittracker/backend/config"
	"habittracker/backend/models"
	"habittracker/backend/progress"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

type HabitController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Service *services.HabitService
}

func NewHabitController(db *gorm.DB, cfg *config.Config, svc *services.HabitService) *HabitController {
	return &HabitController{DB: db, Cfg: cfg, Service: svc}
}

// HabitInput is the body of create and update requests. Update treats nil
// fields as unchanged.
type HabitInput struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	Color        *string `json:"color" validate:"omitempty,color"`
	Frequency    *int    `json:"frequency" validate:"omitempty,oneof=1 7 30"`
	DurationDays *int    `json:"duration_days" validate:"omitempty,gte=0"`
	IsUnlimited  *bool   `json:"is_unlimited"`
	StartDate    *string `json:"start_date" validate:"omitempty,day"`
}

type habitResponse struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Color        string         `json:"color"`
	Frequency    int            `json:"frequency"`
	DurationDays *int           `json:"duration_days"`
	IsUnlimited  bool           `json:"is_unlimited"`
	StartDate    string         `json:"start_date"`
	CreatedAt    time.Time      `json:"created_at"`
	Stats        progress.Stats `json:"stats"`
	WindowStart  string         `json:"window_start,omitempty"`
	WindowEnd    string         `json:"window_end,omitempty"`
}

func (hc *HabitController) toResponse(h *models.Habit, stats progress.Stats) habitResponse {
	return habitResponse{
		ID:           h.ID,
		Name:         h.Name,
		Description:  h.Description,
		Color:        h.Color,
		Frequency:    h.Frequency,
		DurationDays: h.DurationDays,
		IsUnlimited:  h.IsUnlimited,
		StartDate:    hc.Service.StartDate(h).Format(progress.DateLayout),
		CreatedAt:    h.CreatedAt,
		Stats:        stats,
	}
}

// apply copies the set fields onto h and checks the invariants that span
// several fields.
func (in *HabitInput) apply(h *models.Habit) map[string]string {
	if in.Name != nil {
		h.Name = *in.Name
	}
	if in.Description != nil {
		h.Description = *in.Description
	}
	if in.Color != nil {
		h.Color = *in.Color
	}
	if in.Frequency != nil {
		h.Frequency = *in.Frequency
	}
	if in.DurationDays != nil {
		if *in.DurationDays == 0 {
			h.DurationDays = nil
		} else {
			d := *in.DurationDays
			h.DurationDays = &d
		}
	}
	if in.IsUnlimited != nil {
		h.IsUnlimited = *in.IsUnlimited
	}
	if in.StartDate != nil {
		h.StartDate = *in.StartDate
	}

	problems := map[string]string{}
	if h.Name == "" {
		problems["Name"] = "required"
	}
	if h.IsUnlimited && h.DurationDays != nil {
		problems["DurationDays"] = "excluded_with_unlimited"
	}
	if h.Color == "" {
		h.Color = "blue"
	}
	if h.Frequency == 0 {
		h.Frequency = models.FrequencyDaily
	}
	return problems
}

func (hc *HabitController) parseInput(c *fiber.Ctx) (*HabitInput, error) {
	var input HabitInput
	if err := c.BodyParser(&input); err != nil {
		return nil, utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return nil, utils.ValidationError(c, utils.FieldErrors(err))
	}
	return &input, nil
}

func habitID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ListHabits godoc
// @Summary List habits
// @Description Returns the caller's habits ordered by id, each with its stats
// @Tags habits
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits [get]
func (hc *HabitController) ListHabits(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	items, err := hc.Service.ListWithStats(c.UserContext(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch habits")
	}

	habits := make([]habitResponse, 0, len(items))
	for i := range items {
		habits = append(habits, hc.toResponse(&items[i].Habit, items[i].Stats))
	}
	return utils.Success(c, fiber.StatusOK, habits)
}

// CreateHabit godoc
// @Summary Create habit
// @Tags habits
// @Accept json
// @Produce json
// @Param input body HabitInput true "Habit data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits [post]
func (hc *HabitController) CreateHabit(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	input, err := hc.parseInput(c)
	if input == nil {
		return err
	}

	habit := models.Habit{UserID: userID}
	if problems := input.apply(&habit); len(problems) > 0 {
		return utils.ValidationError(c, problems)
	}

	if err := hc.Service.Habits.Create(c.UserContext(), &habit); err != nil {
		return utils.InternalServerError(c, "Could not create habit")
	}
	return utils.Created(c, hc.toResponse(&habit, progress.Stats{}))
}

// GetHabit godoc
// @Summary Get habit
// @Description Returns a habit with fresh stats and its interactive window
// @Tags habits
// @Produce json
// @Param id path int true "Habit ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{id} [get]
func (hc *HabitController) GetHabit(c *fiber.Ctx) error {
	habit, err := hc.loadHabit(c)
	if habit == nil {
		return err
	}

	stats, err := hc.Service.ComputeStats(c.UserContext(), habit)
	if err != nil {
		return utils.InternalServerError(c, "Failed to compute stats")
	}

	resp := hc.toResponse(habit, stats)
	if w := hc.Service.Window(habit); !w.Empty() {
		resp.WindowStart = w.Start.Format(progress.DateLayout)
		resp.WindowEnd = w.End.Format(progress.DateLayout)
	}
	return utils.Success(c, fiber.StatusOK, resp)
}

// UpdateHabit godoc
// @Summary Update habit
// @Tags habits
// @Accept json
// @Produce json
// @Param id path int true "Habit ID"
// @Param input body HabitInput true "Fields to change"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{id} [put]
func (hc *HabitController) UpdateHabit(c *fiber.Ctx) error {
	habit, err := hc.loadHabit(c)
	if habit == nil {
		return err
	}

	input, err := hc.parseInput(c)
	if input == nil {
		return err
	}
	if problems := input.apply(habit); len(problems) > 0 {
		return utils.ValidationError(c, problems)
	}

	if err := hc.Service.Habits.Save(c.UserContext(), habit); err != nil {
		return utils.InternalServerError(c, "Could not update habit")
	}
	stats, err := hc.Service.ComputeStats(c.UserContext(), habit)
	if err != nil {
		return utils.InternalServerError(c, "Failed to compute stats")
	}
	return utils.Success(c, fiber.StatusOK, hc.toResponse(habit, stats))
}

// DeleteHabit godoc
// @Summary Delete habit
// @Tags habits
// @Param id path int true "Habit ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{id} [delete]
func (hc *HabitController) DeleteHabit(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}
	id, ok := habitID(c)
	if !ok {
		return utils.NotFound(c, "Habit not found")
	}

	if err := hc.Service.Habits.Delete(c.UserContext(), userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Habit not found")
		}
		return utils.InternalServerError(c, "Could not delete habit")
	}
	return utils.NoContent(c)
}

// loadHabit resolves the :id habit of the caller. On failure it writes the
// response and returns a nil habit with the handler's error.
func (hc *HabitController) loadHabit(c *fiber.Ctx) (*models.Habit, error) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return nil, utils.Unauthorized(c, "Unauthorized")
	}
	id, ok := habitID(c)
	if !ok {
		return nil, utils.NotFound(c, "Habit not found")
	}

	habit, err := hc.Service.Habit(c.UserContext(), userID, id)
	if errors.Is(err, services.ErrHabitNotFound) {
		return nil, utils.NotFound(c, "Habit not found")
	}
	if err != nil {
		return nil, utils.InternalServerError(c, "Could not query database")
	}
	return habit, nil
}
