// Package main wires the HTTP server for the team directory service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"team-directory/config"
	"team-directory/internal/github"
	"team-directory/internal/repository"
	"team-directory/internal/transport/http/middleware"
	"team-directory/internal/transport/http/server/handlers-fiber"
	"team-directory/internal/usecase"
	"team-directory/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	gh := github.New(log, cfg.GitHub)
	uc := usecase.New(log, repo, gh, cfg.GitHub, cfg.HTTP.RequestTimeout)
	metrics := middleware.NewMetrics()

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.GitHub.SyncTimeout,
		ErrorHandler: handlers_fiber.ErrorHandler(log),
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(metrics.Middleware())

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", metrics.Handler())

	h := handlers_fiber.NewHandler(log, uc, metrics)
	handlers_fiber.RegisterHandlers(serv, h)

	log.Infow("starting server",
		"addr", cfg.ServerAddr(),
		"github_configured", cfg.GitHub.DefaultOrganization() != "",
	)
	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
