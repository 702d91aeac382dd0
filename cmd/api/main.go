package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/ballinwear/assistant-backend/api/routes"
	"github.com/ballinwear/assistant-backend/internal/agent"
	"github.com/ballinwear/assistant-backend/internal/analytics"
	"github.com/ballinwear/assistant-backend/internal/orders"
	product "github.com/ballinwear/assistant-backend/internal/products"
	"github.com/ballinwear/assistant-backend/internal/tools"
	"github.com/ballinwear/assistant-backend/pkg/config"
	"github.com/ballinwear/assistant-backend/pkg/db"
	"github.com/ballinwear/assistant-backend/pkg/env"
	"github.com/ballinwear/assistant-backend/pkg/instance"
	"github.com/ballinwear/assistant-backend/pkg/logger"
	"github.com/ballinwear/assistant-backend/pkg/metrics"
	"github.com/ballinwear/assistant-backend/pkg/migrate"
	"github.com/ballinwear/assistant-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			// conversation memory falls back to the process when redis is down at boot
			logg.Error(ctx, "failed to bootstrap redis", err)
			redisClient = nil
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := routes.Dependencies{
		DB:          dbClient,
		HTTPMetrics: metrics.NewHTTPMetrics(registry),
		Gatherer:    registry,
	}
	if redisClient != nil {
		deps.Redis = redisClient
	}

	chatAgent, err := buildAgent(cfg, logg, dbClient, redisClient, metrics.NewToolMetrics(registry))
	if err != nil {
		logg.Error(ctx, "chat agent not initialized", err)
	} else if chatAgent != nil {
		deps.Chat = chatAgent
	}

	port := env.FirstOf(cfg.App.Port, "PORT")
	addr := ":" + port
	id := instance.GetID()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
		"agent":    deps.Chat != nil,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	closeErr := server.Shutdown(shutdownCtx)
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if redisClient != nil {
		closeErr = multierr.Append(closeErr, redisClient.Close())
	}
	if closeErr != nil {
		logg.Error(shutdownCtx, "error during shutdown", closeErr)
		exitCode = 1
	}

	logg.Info(shutdownCtx, "api server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// buildAgent returns a nil agent without error when no model credentials are configured.
func buildAgent(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client, toolMetrics *metrics.ToolMetrics) (*agent.Agent, error) {
	if !cfg.Agent.Enabled() {
		logg.Warn(context.Background(), "agent api key missing, chat is disabled")
		return nil, nil
	}

	catalog, err := product.NewService(product.NewRepository(dbClient.DB()))
	if err != nil {
		return nil, err
	}
	sales, err := analytics.NewService(analytics.NewRepository(dbClient.DB()))
	if err != nil {
		return nil, err
	}
	orderDetails, err := orders.NewService(orders.NewRepository(dbClient.DB()))
	if err != nil {
		return nil, err
	}

	toolRegistry, err := tools.NewDefaultRegistry(tools.Services{
		Catalog:   catalog,
		Analytics: sales,
		Orders:    orderDetails,
	}, logg, toolMetrics)
	if err != nil {
		return nil, err
	}

	var memory agent.Memory = agent.NewInMemory()
	if cfg.Agent.UsesRedisMemory() {
		if redisClient != nil {
			memory = agent.NewRedisMemory(redisClient, cfg.Agent.MemoryTTL)
		} else {
			logg.Warn(context.Background(), "redis memory requested but redis is unavailable, using in-process memory")
		}
	}

	return agent.New(
		agent.NewOpenAIClient(cfg.Agent),
		toolRegistry,
		memory,
		agent.OptionsFromConfig(cfg.Agent),
		logg,
	)
}
