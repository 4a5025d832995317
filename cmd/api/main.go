// Command api runs the social media REST backend.
//
// Startup order: config, logger (+ optional New Relic), database
// migrations, server container, repositories, services, handlers,
// middleware, router. Shutdown is graceful on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jdnielss/socialmedia-api/internal/config"
	"github.com/jdnielss/socialmedia-api/internal/database"
	"github.com/jdnielss/socialmedia-api/internal/handler"
	"github.com/jdnielss/socialmedia-api/internal/logger"
	"github.com/jdnielss/socialmedia-api/internal/middleware"
	"github.com/jdnielss/socialmedia-api/internal/repository"
	"github.com/jdnielss/socialmedia-api/internal/router"
	"github.com/jdnielss/socialmedia-api/internal/server"
	"github.com/jdnielss/socialmedia-api/internal/service"
)

// shutdownTimeout bounds how long inflight requests may run during
// graceful shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config.Load logs fatally on its own failures; this guards
		// future variants that return errors instead.
		os.Exit(1)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		os.Exit(1)
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	r := router.New(handlers, middlewares)
	s.SetupHTTPServer(r)

	// Run the server in a goroutine so the main goroutine can wait on
	// shutdown signals.
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if loggerService != nil {
		loggerService.Shutdown(5 * time.Second)
	}

	log.Info().Msg("server stopped")
}
