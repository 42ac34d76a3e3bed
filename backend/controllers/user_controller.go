package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"habittracker/backend/config"
	"habittracker/backend/models"
	"habittracker/backend/utils"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

type UpdateUserRequest struct {
	Username    string `json:"username" validate:"omitempty,min=3,max=150" example:"john_doe"`
	Email       string `json:"email" validate:"omitempty,email,max=100" example:"user@example.com"`
	OldPassword string `json:"old_password" example:"oldPassword123"`
	NewPassword string `json:"new_password" validate:"omitempty,min=8" example:"newPassword123"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's profile data
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	var habitCount int64
	uc.DB.Model(&models.Habit{}).Where("user_id = ?", userID).Count(&habitCount)

	var lastLogin models.LoginHistory
	var lastLoginAt *time.Time
	if err := uc.DB.Where("user_id = ?", userID).Order("login_time DESC").First(&lastLogin).Error; err == nil {
		lastLoginAt = &lastLogin.LoginTime
	}

	// Формируем ответ без чувствительных данных
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":          user.ID,
		"username":    user.Username,
		"email":       user.Email,
		"created_at":  user.CreatedAt,
		"habit_count": habitCount,
		"last_login":  lastLoginAt,
	})
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Updates username, email or password of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateUserRequest true "Profile update data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.ValidationError(c, utils.FieldErrors(err))
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	if input.Username != "" && input.Username != user.Username {
		var existingUser models.User
		if err := uc.DB.Where("username = ?", input.Username).First(&existingUser).Error; err == nil {
			if existingUser.ID != user.ID {
				return utils.BadRequest(c, "Username already taken")
			}
		}
		user.Username = input.Username
	}

	if input.Email != "" && !strings.EqualFold(input.Email, user.Email) {
		var existingUser models.User
		if err := uc.DB.Where("LOWER(email) = ?", strings.ToLower(input.Email)).First(&existingUser).Error; err == nil {
			if existingUser.ID != user.ID {
				return utils.BadRequest(c, "Email already taken")
			}
		}
		user.Email = input.Email
	}

	// Обновление пароля
	if input.NewPassword != "" {
		if input.OldPassword == "" {
			return utils.BadRequest(c, "Old password is required to set new password")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
			return utils.Unauthorized(c, "Invalid old password")
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Could not hash password")
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Profile updated successfully",
	})
}

// GetUserActivity godoc
// @Summary Get user activity
// @Description Returns logins and marked days of the last N days
// @Tags users
// @Produce json
// @Param days query int false "Number of days to look back" default(7)
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/activity [get]
func (uc *UserController) GetUserActivity(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	days := c.QueryInt("days", 7)
	if days < 1 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	var logins []models.LoginHistory
	if err := uc.DB.Where("user_id = ? AND login_time >= ?", userID, since).
		Order("login_time DESC").
		Find(&logins).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch login history")
	}

	var activity []struct {
		Date   string `json:"date"`
		Marked int    `json:"marked"`
		Done   int    `json:"done"`
	}
	if err := uc.DB.Model(&models.HabitStatus{}).
		Select("date, COUNT(*) AS marked, SUM(CASE WHEN done THEN 1 ELSE 0 END) AS done").
		Where("user_id = ? AND date >= ?", userID, since.Format("2006-01-02")).
		Group("date").
		Order("date DESC").
		Scan(&activity).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch habit activity")
	}

	loginTimes := make([]time.Time, 0, len(logins))
	for _, l := range logins {
		loginTimes = append(loginTimes, l.LoginTime)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"logins":      loginTimes,
		"activity":    activity,
		"period_days": days,
	})
}
