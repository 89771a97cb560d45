package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"focusboard/internal/chat"
	"focusboard/internal/config"
	"focusboard/internal/db"
	"focusboard/internal/handler"
	"focusboard/internal/recorder"
	"focusboard/internal/repository"
	"focusboard/internal/router"
	"focusboard/internal/service"
	"focusboard/internal/timer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	log := zerolog.New(os.Stdout).Level(level).With().
		Timestamp().
		Str("service", "focusboard").
		Logger()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer database.Close()

	if err := db.Migrate(database, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	taskRepo := repository.NewTaskRepository(database)
	lectureRepo := repository.NewLectureRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	sessionRepo := repository.NewSessionRepository(database)

	sessionRecorder := recorder.New(sessionRepo, log)
	runner := timer.NewRunner(sessionRecorder)
	defer runner.Close()

	aiClient := chat.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)

	engine := router.New(router.Handlers{
		Task:      handler.NewTaskHandler(service.NewTaskService(taskRepo)),
		Lecture:   handler.NewLectureHandler(service.NewLectureService(lectureRepo)),
		Project:   handler.NewProjectHandler(service.NewProjectService(projectRepo)),
		Session:   handler.NewSessionHandler(service.NewSessionService(sessionRepo)),
		Analytics: handler.NewAnalyticsHandler(service.NewAnalyticsService(taskRepo, sessionRepo)),
		Timer:     handler.NewTimerHandler(runner),
		Chat:      handler.NewChatHandler(service.NewChatService(aiClient)),
	}, cfg.CORSOrigins)

	log.Info().Str("port", cfg.Port).Msg("focusboard backend listening")
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}
