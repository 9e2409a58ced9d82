// Package main is the entry point for the voyage engine API.
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/saltmarch/voyage-engine/internal/cache"
	"github.com/saltmarch/voyage-engine/internal/config"
	"github.com/saltmarch/voyage-engine/internal/database"
	"github.com/saltmarch/voyage-engine/internal/decisions"
	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/httpapi"
	"github.com/saltmarch/voyage-engine/internal/notify"
	"github.com/saltmarch/voyage-engine/internal/voyage"
	applogger "github.com/saltmarch/voyage-engine/pkg/logger"
)

func main() {
	ctx := context.Background()
	appLogger := applogger.New()

	cfg, err := config.Load(getEnvOr("CONFIG_PATH", "config.yaml"))
	if err != nil {
		appLogger.Error("failed to load configuration", "error", err)
		panic(err)
	}

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		appLogger.Error("failed to parse redis url", "error", err)
		panic(err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warn("redis connection failed, caches will miss", "error", err)
	}

	db, err := database.New(ctx, database.Config{
		PostgresURL:   cfg.Postgres.URL,
		ReferencePath: cfg.Postgres.ReferencePath,
	})
	if err != nil {
		appLogger.Error("failed to connect to databases", "error", err)
		panic(err)
	}
	defer db.Close()
	appLogger.Info("database connections established")

	reference, err := database.NewReferenceRepository(ctx, db.Reference)
	if err != nil {
		appLogger.Error("failed to load reference registry", "error", err)
		panic(err)
	}
	priceLog := database.NewPriceLogRepository(db.Postgres)

	weatherCache := cache.NewWeatherCache(redisClient)

	throttle := decisions.NewSimulationThrottle(cfg.Throttle.StepsPerSecond, cfg.Throttle.Burst)

	store := database.NewVoyageStore(db.Postgres)
	registry := voyage.NewRegistry(store)

	roller := dice.New(time.Now().UnixNano())
	engine := voyage.NewEngine(roller, reference, nil)
	engine.Decisions = decisions.NewAutomatePolicy()
	engine.Prices = priceLog
	engine.Log = appLogger

	hub := notify.NewHub()
	hubCtx, cancelHub := context.WithCancel(ctx)
	defer cancelHub()
	go hub.Run(hubCtx)

	handler := httpapi.NewHandler(engine, registry, hub, throttle, appLogger)
	handler.WeatherCache = weatherCache
	handler.Roller = roller
	app := httpapi.NewApp(handler, cfg.Server.CORSOrigins)

	go func() {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		appLogger.Info("metrics listening", "addr", ":9090")
		if err := http.ListenAndServe(":9090", metricsMux); err != nil {
			appLogger.Error("metrics server stopped", "error", err)
		}
	}()

	appLogger.Info("voyage engine API starting", "port", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		appLogger.Error("server stopped", "error", err)
		panic(err)
	}
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
