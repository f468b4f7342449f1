package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	analyticsHttp "shop-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsUsecase "shop-analytics-service/internal/analytics/core/usecase"
	"shop-analytics-service/internal/config"
	"shop-analytics-service/internal/logger"
	"shop-analytics-service/internal/telemetry"

	_ "shop-analytics-service/docs"
)

func serve(cmd *cobra.Command, args []string) error {
	// Config
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("load bucket timezone: %w", err)
	}

	// Store
	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	// Usecases
	salesUC := analyticsUsecase.NewGetSalesOverTimeUseCase(store, loc)
	growthUC := analyticsUsecase.NewGetSalesGrowthUseCase(salesUC)
	salesYearsUC := analyticsUsecase.NewGetSalesYearsUseCase(store, loc)
	repeatUC := analyticsUsecase.NewGetRepeatCustomersUseCase(store, store, loc)
	distributionUC := analyticsUsecase.NewGetCustomerDistributionUseCase(store)
	newCustomersUC := analyticsUsecase.NewGetNewCustomersUseCase(store)
	clvUC := analyticsUsecase.NewGetCLVByCohortsUseCase(store, store, cfg.CohortYears)
	documentsUC := analyticsUsecase.NewListDocumentsUseCase(store)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	metrics := telemetry.NewMetrics()

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(logger.Middleware(log))
	app.Use(metrics.Middleware())

	analyticsHttp.NewSalesHandler(salesUC, growthUC, salesYearsUC, log).Register(app)
	analyticsHttp.NewCustomersHandler(repeatUC, distributionUC, newCustomersUC, clvUC, log).Register(app)
	analyticsHttp.NewDocumentsHandler(documentsUC, log).Register(app)

	app.Get("/healthz", analyticsHttp.Health)
	app.Get("/metrics", metrics.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	return run(app, cfg.Address, quit, cfg.ShutdownTimeout, closeStore, log)
}

type server interface {
	Listen(addr string) error
	ShutdownWithContext(ctx context.Context) error
}

// run serves until a signal arrives on quit or Listen fails. The store is
// closed in both cases; a Listen failure is returned.
func run(srv server, addr string, quit <-chan os.Signal, timeout time.Duration, closeStore func(context.Context) error, log logrus.FieldLogger) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.Listen(addr)
	}()

	log.WithField("address", addr).Info("server started")

	select {
	case err := <-listenErr:
		log.WithError(err).Error("fiber stopped")
		if cerr := closeStore(context.Background()); cerr != nil {
			log.WithError(cerr).Error("store close error")
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case s := <-quit:
		log.WithField("signal", s.String()).Info("shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}
	if err := closeStore(shutdownCtx); err != nil {
		log.WithError(err).Error("store close error")
	}

	log.Info("server exiting")
	return nil
}
