package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"node-metrics-dashboard/internal/config"
	"node-metrics-dashboard/internal/logging"
	"node-metrics-dashboard/internal/upstream"

	metricsHttp "node-metrics-dashboard/internal/metrics/adapters/http/fiber"
	metricsApi "node-metrics-dashboard/internal/metrics/adapters/metricsapi"
	metricsUsecase "node-metrics-dashboard/internal/metrics/core/usecase"

	nodesHttp "node-metrics-dashboard/internal/nodes/adapters/http/fiber"
	nodesApi "node-metrics-dashboard/internal/nodes/adapters/statsapi"
	nodesUsecase "node-metrics-dashboard/internal/nodes/core/usecase"

	periodHttp "node-metrics-dashboard/internal/period/adapters/http/fiber"
	periodDomain "node-metrics-dashboard/internal/period/core/domain"
	periodUsecase "node-metrics-dashboard/internal/period/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "node-metrics-dashboard/docs"
)

// @title Node Metrics Dashboard API
// @version 1.0
// @BasePath /
func main() {
	// Config
	cfg := config.FromEnv()

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		logrus.Fatalf("logging: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	epoch, _ := cfg.Epoch()
	loc, _ := cfg.Location()
	payoutWeekday, _ := cfg.Weekday()

	// Period parsing, checked once so a broken token table never serves traffic
	parser := periodDomain.NewParser(epoch, loc, nil)
	if err := periodDomain.ValidateTokens(parser); err != nil {
		log.WithError(err).Fatal("period token table is inconsistent")
	}

	// Upstream clients
	metricsClient, err := upstream.NewClient("metrics", cfg.MetricsOrigin, cfg.FetchTimeout, log)
	if err != nil {
		log.WithError(err).Fatal("metrics client")
	}

	// Repositories
	metricsRepository := metricsApi.NewMetricsRepository(metricsClient)

	// Usecases
	periodUC := periodUsecase.NewPeriodUseCase(parser, payoutWeekday, cfg.PayoutNth)
	getMetricsUC := metricsUsecase.NewGetMetricsUseCase(metricsRepository)
	getDashboardUC := metricsUsecase.NewGetDashboardUseCase(metricsRepository, parser, log.WithField("component", "dashboard"))

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true,
	})

	accessLog := log.WriterLevel(logrus.InfoLevel)
	defer accessLog.Close()

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: accessLog,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(cfg.CORSOrigins, ","),
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + metricsHttp.ViewHeader,
		ExposeHeaders: fiber.HeaderXRequestID,
	}))

	// period endpoints
	periodHandler := periodHttp.NewPeriodHandler(periodUC)
	app.Get("/periods", periodHandler.ListPeriods)
	app.Get("/periods/resolve", periodHandler.ResolvePeriod)

	// metrics endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(getMetricsUC, getDashboardUC)
	app.Get("/metrics", metricsHandler.GetMetrics)
	app.Get("/dashboard", metricsHandler.GetDashboard)
	app.Get("/dashboard/views/:id", metricsHandler.GetLatestDashboard)

	// node stats endpoints
	if cfg.StatsOrigin != "" {
		statsClient, err := upstream.NewClient("stats", cfg.StatsOrigin, cfg.FetchTimeout, log)
		if err != nil {
			log.WithError(err).Fatal("stats client")
		}
		statsRepository := nodesApi.NewStatsRepository(statsClient)

		nodesHandler := nodesHttp.NewNodesHandler(
			nodesUsecase.NewListNodesUseCase(statsRepository, log.WithField("component", "nodes")),
			nodesUsecase.NewLoginUseCase(statsRepository),
		)
		app.Get("/nodes", nodesHandler.ListNodes)
		app.Post("/login", nodesHandler.Login)
	} else {
		log.Warn("APP_STATS_ORIGIN is not set, node stats endpoints disabled")
	}

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.WithError(err).Error("fiber stopped")
		}
	}()

	log.WithFields(logrus.Fields{
		"addr":    cfg.ListenAddr,
		"metrics": cfg.MetricsOrigin,
		"stats":   cfg.StatsOrigin,
		"tz":      loc.String(),
	}).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	log.Info("server exiting")
}
