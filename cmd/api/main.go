package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"userservice/internal/app/user"
	"userservice/internal/config"
	"userservice/internal/db"
	"userservice/internal/db/repository"
	"userservice/internal/http/handlers/health"
	userhandler "userservice/internal/http/handlers/user"
	"userservice/internal/http/router"
	"userservice/internal/kafka"
	"userservice/internal/logging"
	"userservice/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
		cfg.Log.Level,
	)

	logger.Info("starting service",
		"env", cfg.Environment,
		"db_driver", cfg.DB.Driver,
	)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("service failed", "error", err)
		os.Exit(1)
	}

	logger.Info("service stopped")
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	// 3) Initialize telemetry (OpenTelemetry)
	otelShutdown, err := telemetry.Setup(ctx, cfg, logger)
	if err != nil {
		return err
	}
	// ensure we flush / shut down exporter on exit
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	// 4) Store handle + schema. A store that is unreachable here is logged
	// and every request will report it.
	dbClient, err := db.NewClient(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = dbClient.Close()
	}()

	db.EnsureSchema(ctx, dbClient, logger)

	// 5) Kafka bus (Watermill) and consumer router
	bus, closeBus, err := kafka.NewBus(cfg.Kafka, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeBus(context.Background())
	}()

	kafkaRouter, err := kafka.NewRouter(cfg.Kafka, logger)
	if err != nil {
		return err
	}

	// 6) Repositories & services
	userRepo := repository.NewUserRepository(dbClient, logger)
	userEvents := kafka.NewUserEvents(bus, cfg.Kafka, logger)
	userService := user.NewService(userRepo, userEvents, logger)

	// 7) HTTP handlers + router
	httpRouter := router.NewRouter(
		logger,
		router.Options{MaxBodyBytes: cfg.HTTP.MaxBodyBytes},
		health.NewHandler(dbClient),
		userhandler.NewHandler(userService, logger),
	)

	srv := &http.Server{
		Addr: cfg.HTTP.Addr(),
		Handler: otelhttp.NewHandler(
			httpRouter,
			cfg.Observability.ServiceName, // span name prefix
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8) Run HTTP server and Kafka router until one fails or we are signalled
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("kafka router starting", "enabled", cfg.Kafka.Enabled)
		return kafkaRouter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", "error", err)
		}
		return kafkaRouter.Close()
	})

	return g.Wait()
}
