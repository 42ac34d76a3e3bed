package routes

import (
	"log"

	"habittracker/backend/config"
	"habittracker/backend/controllers"
	_ "habittracker/backend/docs"
	"habittracker/backend/middleware"
	"habittracker/backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"gorm.io/gorm"
)

// NewApp builds the Fiber application with middleware and routes.
func NewApp(db *gorm.DB, cfg *config.Config, svc *services.HabitService, logger *log.Logger) *fiber.App {
	app := fiber.New()

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger, cfg.LogColors))

	SetupRoutes(app, db, cfg, svc)
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, svc *services.HabitService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)
	app.Get("/api/user/activity", authMiddleware, userController.GetUserActivity)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg, svc)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetProgressOverview)

	// Habit routes
	habitController := controllers.NewHabitController(db, cfg, svc)
	calendarController := controllers.NewCalendarController(db, cfg, svc)
	habits := app.Group("/api/habits", authMiddleware)
	habits.Get("/", habitController.ListHabits)
	habits.Post("/", habitController.CreateHabit)
	habits.Get("/:id", habitController.GetHabit)
	habits.Put("/:id", habitController.UpdateHabit)
	habits.Delete("/:id", habitController.DeleteHabit)
	habits.Get("/:id/calendar", calendarController.GetMonth)
	habits.Post("/:id/calendar", calendarController.UpdateDay)
}
