package main

import (
	"context"
	"log"

	"habittracker/backend/commands"
)

// @title Habit Tracker API
// @version 1.0
// @description Habits, daily completion calendar and progress statistics.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := commands.Root().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
