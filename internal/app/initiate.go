package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/shandysiswandi/csvboard/internal/pkg/pkgamqp"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkglog"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgredis"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkguid"
)

func defaultConfig() map[string]any {
	return map[string]any{
		"tz":                          "UTC",
		"log.level":                   "info",
		"log.format":                  "json",
		"server.address.http":         ":8000",
		"server.cors.allowed_origins": "*",
		"modules.dataset.enabled":     true,
		"dataset.data_directory":      "data",
		"dataset.upload.max_bytes":    32 << 20,
		"cache.redis.enabled":         false,
		"cache.redis.ttl_seconds":     300,
		"events.buffer":               256,
		"events.workers":              2,
		"events.max_retries":          3,
		"events.base_backoff_ms":      200,
		"events.amqp.enabled":         false,
		"events.amqp.queue":           "csvboard.file_events",
	}
}

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path, pkgconfig.WithDefaults(defaultConfig()))
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.InitLogging(pkglog.Options{
		Level:  cfg.GetString("log.level"),
		Format: cfg.GetString("log.format"),
	})

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake(-1)
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initResources() {
	if a.config.GetBool("cache.redis.enabled") {
		client, err := pkgredis.New(a.ctx, pkgredis.Options{
			Address:  a.config.GetString("cache.redis.address"),
			Password: a.config.GetString("cache.redis.password"),
			DB:       int(a.config.GetInt("cache.redis.db")),
		})
		if err != nil {
			slog.Error("failed to init redis", "error", err)
			os.Exit(1)
		}
		a.redis = client
	}

	if a.config.GetBool("events.amqp.enabled") {
		conn, err := pkgamqp.Dial(a.ctx, a.config.GetString("events.amqp.url"))
		if err != nil {
			slog.Error("failed to init rabbitmq", "error", err)
			os.Exit(1)
		}
		a.amqp = conn
	}
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           newHTTPHandler(a.config, a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// newHTTPHandler wraps h with the CORS policy from server.cors.allowed_origins.
func newHTTPHandler(cfg pkgconfig.Config, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.GetArray("server.cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderCorrelationID},
		AllowCredentials: true,
	}).Handler(h)
}

// initClosers registers shared resources. Module closers are added earlier by
// initModules so they drain before the resources they use go away.
func (a *App) initClosers() {
	if a.redis != nil {
		a.addCloser("Redis", func(context.Context) error {
			return a.redis.Close()
		})
	}
	if a.amqp != nil {
		a.addCloser("RabbitMQ", func(context.Context) error {
			return a.amqp.Close()
		})
	}
	a.addCloser("Config", func(context.Context) error {
		return a.config.Close()
	})
}
