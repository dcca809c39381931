package main

import (
	"github.com/lectioapp/lectio/config"
	"github.com/lectioapp/lectio/controllers"
	"github.com/lectioapp/lectio/models"
	"github.com/lectioapp/lectio/routes"
	"github.com/lectioapp/lectio/scheduler"
	"github.com/lectioapp/lectio/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.ReadingLog{}, &models.Section{})

	r := routes.SetupRouter(db)

	// Keep the public leaderboard snapshot warm in the background
	s := scheduler.New(controllers.NewLeaderboardController(db))
	s.Start()
	defer s.Stop()

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
