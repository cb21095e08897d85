// @title                       Oil heating API
// @version                     1.0
// @description                 Thermo-hydraulic calculations for oil heated in a pipe.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "oil_heating/docs"
	"oil_heating/internal/config"
	"oil_heating/internal/handlers"
	"oil_heating/internal/logger"
	"oil_heating/internal/repository"
	"oil_heating/internal/repository/db"
	"oil_heating/internal/server"
	"oil_heating/internal/service"
)

const (
	configDir       = "configs"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Options{
		Defaults:       cfg.Defaults,
		MaxSweepPoints: cfg.Sweep.MaxPoints,
		SigningKey:     cfg.Auth.SigningKey,
		TokenTTL:       cfg.Auth.TokenTTL,
	})
	apiHandler := handlers.NewHandler(services, log.Named("http"), handlers.Options{
		RPS:    cfg.Rate.RPS,
		Burst:  cfg.Rate.Burst,
		Range:  cfg.Sweep.PowerRange,
		Policy: cfg.Sweep.Policy,
	})

	logBaseline(services, cfg, log)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// logBaseline evaluates the configured defaults once so a broken parameter
// set shows up at startup instead of on the first request.
func logBaseline(services *service.Service, cfg *config.Config, log *logger.Logger) {
	out, err := services.Calculate(context.Background(), service.CalculationParams{Inputs: cfg.Defaults})
	if err != nil {
		log.Errorw("baseline_calculation_failed", "err", err)
		return
	}
	r := out.Result
	log.Infow("baseline_calculation",
		"delta_t", r.DeltaT,
		"reynolds_initial", r.ReynoldsInitial,
		"reynolds_new", r.ReynoldsNew,
		"max_velocity_new", r.MaxVelocityNew,
		"warnings", len(r.Warnings),
		"sweep_points", cfg.Sweep.Len(),
	)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
