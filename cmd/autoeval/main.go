package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pupujiger/autoeval/internal/api"
	"github.com/pupujiger/autoeval/internal/config"
	"github.com/pupujiger/autoeval/internal/logger"
	"github.com/pupujiger/autoeval/internal/service"
	"github.com/pupujiger/autoeval/internal/session"
	"github.com/pupujiger/autoeval/internal/ui"
	"github.com/pupujiger/autoeval/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("api", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("Starting autoeval")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx := context.Background()

	// ─── Initialize API Client & Session ───────────────────────────────
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	sess := session.New(client, log)

	// ─── Initialize Services ───────────────────────────────────────────
	courseService := service.NewCourseService(client, cfg.PageLimit, log)
	questionService := service.NewQuestionService(client, log)
	evaluationService := service.NewEvaluationService(client, log)

	// ─── Run Terminal Shell ────────────────────────────────────────────
	shell := ui.New(cfg, sess, courseService, questionService, evaluationService, os.Stdin, os.Stdout, log)
	shell.Run(ctx)

	log.Info().Msg("Bye")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
