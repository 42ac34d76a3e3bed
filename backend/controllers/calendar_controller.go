package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"habittracker/backend/calendar"
	"habittracker/backend/config"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

type CalendarController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Service *services.HabitService
}

func NewCalendarController(db *gorm.DB, cfg *config.Config, svc *services.HabitService) *CalendarController {
	return &CalendarController{DB: db, Cfg: cfg, Service: svc}
}

// GetMonth godoc
// @Summary Habit calendar month
// @Description Returns every day of the month with its state and whether it accepts clicks
// @Tags calendar
// @Produce json
// @Param id path int true "Habit ID"
// @Param year query int false "Year, defaults to current"
// @Param month query int false "Month 1-12, defaults to current"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{id}/calendar [get]
func (cc *CalendarController) GetMonth(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}
	id, ok := habitID(c)
	if !ok {
		return utils.NotFound(c, "Habit not found")
	}

	today := cc.Service.Today()
	year := c.QueryInt("year", today.Year())
	month := c.QueryInt("month", int(today.Month()))
	if _, err := services.ResolveDate(year, month, 1); err != nil {
		year, month = today.Year(), int(today.Month())
	}

	view, err := cc.Service.MonthView(c.UserContext(), userID, id, year, month)
	if errors.Is(err, services.ErrHabitNotFound) {
		return utils.NotFound(c, "Habit not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to build calendar")
	}
	return utils.Success(c, fiber.StatusOK, view)
}

// UpdateDay godoc
// @Summary Update one calendar day
// @Description Sets a day to done, not_done or none and returns the recomputed stats
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path int true "Habit ID"
// @Param input body calendar.UpdateRequest true "Day update"
// @Success 200 {object} calendar.UpdateResponse
// @Failure 400 {object} calendar.UpdateResponse
// @Failure 404 {object} calendar.UpdateResponse
// @Security ApiKeyAuth
// @Router /habits/{id}/calendar [post]
func (cc *CalendarController) UpdateDay(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return calendarError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, ok := habitID(c)
	if !ok {
		return calendarError(c, fiber.StatusNotFound, "Habit not found")
	}

	var req calendar.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return calendarError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return calendarError(c, fiber.StatusBadRequest, "Invalid request: "+err.Error())
	}
	action, err := calendar.ParseDayState(req.Action)
	if err != nil {
		return calendarError(c, fiber.StatusBadRequest, err.Error())
	}

	state, stats, err := cc.Service.UpdateDay(c.UserContext(), userID, id, req.Year, req.Month, req.Day, action)
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return calendarError(c, fiber.StatusNotFound, "Habit not found")
	case errors.Is(err, services.ErrInvalidDate), errors.Is(err, services.ErrOutsideWindow):
		return calendarError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		cc.Service.Logger.Printf("calendar update failed habit=%d user=%d: %v", id, userID, err)
		return calendarError(c, fiber.StatusInternalServerError, "Could not update calendar")
	}

	return c.JSON(calendar.UpdateResponse{
		Status:   calendar.StatusSuccess,
		NewState: state,
		Stats:    &stats,
	})
}

func calendarError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(calendar.UpdateResponse{
		Status:  calendar.StatusFailed,
		Message: message,
	})
}
