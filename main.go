package main

import (
	"context"
	"crypto/tls"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"garden-api/api"
	"garden-api/plantid"
	"garden-api/storage"
	"garden-api/store"
	"garden-api/weather"
)

func main() {
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}
	logger := log.New()

	connStr := os.Getenv("STORAGE_CONNECTION_STRING")
	tableName := os.Getenv("GARDEN_TABLE")
	if connStr == "" || tableName == "" {
		log.Fatal("missing storage config")
	}
	durable, err := storage.New(connStr, tableName)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	var kv store.KV = durable
	var deduper api.Deduper
	if redisConn := os.Getenv("REDIS_CONNECTION_STRING"); redisConn != "" {
		rc := redis.NewClient(redisOptions(redisConn))

		cacheTTL := envDuration("CACHE_TTL", time.Hour)
		kv = storage.NewCache(durable, rc, cacheTTL)

		deduperTTL := envDuration("DEDUPER_TTL", 24*time.Hour)
		deduper = api.NewRedisDeduper(rc, deduperTTL)
	}

	ctx := context.Background()

	zones := store.NewZoneStore(kv, logger)
	loaded := zones.Load(ctx)
	logger.WithFields(log.Fields{"zones": len(loaded)}).Info("zone store loaded")

	quests := store.NewChecklistStore(kv, logger)
	flags := quests.Load(ctx)
	logger.WithFields(log.Fields{"completed": flags.CompletedCount(), "total": len(flags)}).Info("quest checklist loaded")

	weatherURL := os.Getenv("WEATHER_URL")
	if weatherURL == "" {
		log.Fatal("missing weather config")
	}
	city := os.Getenv("WEATHER_CITY")
	if city == "" {
		city = "Portland"
	}
	poller := weather.NewPoller(
		weather.NewClient(weatherURL, 10*time.Second),
		city,
		envDuration("WEATHER_REFRESH", 30*time.Minute),
		logger,
	)
	poller.Start()
	defer poller.Stop()

	plantURL := os.Getenv("PLANT_ID_URL")
	if plantURL == "" {
		log.Fatal("missing plant identification config")
	}
	identifier := plantid.NewClient(plantURL, os.Getenv("PLANT_ID_API_KEY"), 30*time.Second)

	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Idempotency-Key"},
	}))
	e.Use(echoprometheus.NewMiddleware("garden_api"))
	e.GET("/metrics", echoprometheus.NewHandler())

	api.Register(e, zones, quests, poller, identifier, deduper, logger)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("FUNCTIONS_CUSTOMHANDLER_PORT"); ok {
		listenAddr = ":" + val
	}

	e.Logger.Fatal(e.Start(listenAddr))
}

// redisOptions accepts either a redis URL or an Azure-style
// "host:port,password=...,ssl=true" connection string.
func redisOptions(connStr string) *redis.Options {
	opts, err := redis.ParseURL(connStr)
	if err == nil {
		return opts
	}
	parts := strings.Split(connStr, ",")
	opts = &redis.Options{Addr: parts[0]}
	for _, p := range parts[1:] {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.ToLower(kv[0]) {
		case "password":
			opts.Password = kv[1]
		case "ssl":
			if strings.ToLower(kv[1]) == "true" {
				opts.TLSConfig = &tls.Config{}
			}
		}
	}
	return opts
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Fatalf("invalid %s: %v", name, err)
	}
	return d
}
