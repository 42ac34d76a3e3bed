package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"habittracker/backend/config"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

// monthsOfProgress is how many months GetProgress reports.
const monthsOfProgress = 4

type ProgressController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Service *services.HabitService
}

func NewProgressController(db *gorm.DB, cfg *config.Config, svc *services.HabitService) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Service: svc}
}

// GetProgress godoc
// @Summary Get user progress
// @Description Returns done and marked day counts across all habits for the last 4 months
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	months, err := pc.Service.MonthlyProgress(c.UserContext(), userID, monthsOfProgress)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress")
	}

	return c.JSON(fiber.Map{
		"progress": months,
	})
}

// GetProgressOverview godoc
// @Summary Get progress overview
// @Description Returns streaks and scores of every habit plus totals
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressOverview
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/overview [get]
func (pc *ProgressController) GetProgressOverview(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	overview, err := pc.Service.Overview(c.UserContext(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to compute overview")
	}
	return c.JSON(overview)
}
