package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/triager/internal/config"
	"github.com/yukikurage/triager/internal/database"
	"github.com/yukikurage/triager/internal/handlers"
	"github.com/yukikurage/triager/internal/logging"
	"github.com/yukikurage/triager/internal/repository"
	"github.com/yukikurage/triager/internal/services"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.Migrate(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	reportService := services.NewReportService(reportRepo)
	taskService := services.NewTaskService(taskRepo, reportRepo, userRepo)
	accountService := services.NewAccountService(userRepo)

	h := handlers.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Dashboard: handlers.NewDashboardHandler(authService, reportService, taskService),
		Report:    handlers.NewReportHandler(reportService, taskService),
		Task:      handlers.NewTaskHandler(taskService),
		Account:   handlers.NewAccountHandler(authService, accountService),
	}

	r, err := handlers.NewRouter(cfg, log, h)
	if err != nil {
		log.WithError(err).Fatal("failed to build router")
	}

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
