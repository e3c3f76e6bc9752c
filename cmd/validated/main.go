package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/validated/pkg/binder"
	"github.com/dmitrymomot/validated/pkg/config"
	"github.com/dmitrymomot/validated/pkg/httpserver"
	"github.com/dmitrymomot/validated/pkg/logger"
	"github.com/dmitrymomot/validated/pkg/metrics"
	"github.com/dmitrymomot/validated/pkg/requestid"
)

const serviceName = "validated"

type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	SchemaFiles []string `env:"SCHEMA_FILE" envSeparator:","`
	Strict      bool   `env:"BIND_STRICT" envDefault:"false"`
	MaxBodySize int64  `env:"BIND_MAX_BODY_SIZE" envDefault:"1048576"`

	HTTP httpserver.Config
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			slog.Error("invalid configuration", logger.Error(err))
			os.Exit(1)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("service stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	reg, err := buildRegistry(ctx, cfg.SchemaFiles...)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "schemas registered", logger.Count(len(reg.IDs())), slog.Any("types", reg.IDs()))

	bindOpts := []binder.Option{binder.WithRegistry(reg), binder.WithMaxBodySize(cfg.MaxBodySize)}
	if cfg.Strict {
		bindOpts = append(bindOpts, binder.WithStrict())
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(reg, log, metrics.New(), bindOpts...))
}
