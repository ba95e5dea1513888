package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/tair/electric-cars/internal/car"
	grpcDelivery "github.com/tair/electric-cars/internal/car/delivery/grpc"
	httpDelivery "github.com/tair/electric-cars/internal/car/delivery/http"
	"github.com/tair/electric-cars/internal/car/repository"
	"github.com/tair/electric-cars/internal/car/usecase/command"
	"github.com/tair/electric-cars/internal/config"
	"github.com/tair/electric-cars/kafka"
	"github.com/tair/electric-cars/pkg/auth"
	"github.com/tair/electric-cars/pkg/database"
	"github.com/tair/electric-cars/pkg/logger"
	"github.com/tair/electric-cars/pkg/ratelimit"
	"github.com/tair/electric-cars/pkg/tracing"
)

const serviceVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{ServiceName: "electric-cars-api"})
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(logger.Options{
		ServiceName: cfg.ServiceName,
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
	})
	logger.Logger.Info().Str("environment", cfg.Environment).Msg("Starting electric cars service")

	if err := run(cfg); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Service stopped with error")
	}
	logger.Logger.Info().Msg("Service stopped")
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.InitTracer(tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: serviceVersion,
		JaegerEndpoint: cfg.Tracing.JaegerEndpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := tracing.Shutdown(context.Background(), tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Error shutting down tracer provider")
		}
	}()

	db, err := database.NewGormConnection(ctx, cfg.Database, logger.Logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
		logger.Logger.Info().Msg("Database migration completed")
	}

	publisher, closePublisher, err := newPublisher(cfg.Kafka)
	if err != nil {
		return err
	}
	defer closePublisher()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpDelivery.NewMetrics(registry)

	handlers, err := car.InitializeHandlers(db, publisher, newIdentity(cfg.Auth), metrics)
	if err != nil {
		return err
	}
	router := httpDelivery.NewRouter(handlers, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	middlewares := httpDelivery.DefaultMiddlewareConfig(cfg.HTTP.AllowedOrigins, cfg.HTTP.RequestTimeout)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		middlewares.RateLimit = ratelimit.NewLimiter(client, cfg.Redis.RateLimit, cfg.Redis.RateLimitSpan).Middleware
	}

	g, gctx := errgroup.WithContext(ctx)

	server := httpDelivery.NewServer(":"+cfg.HTTP.Port, middlewares.Wrap(router))
	g.Go(func() error { return server.Run(gctx) })

	if cfg.GRPC.Enabled {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		lis, err := net.Listen("tcp", ":"+cfg.GRPC.Port)
		if err != nil {
			return err
		}
		grpcServer := grpcDelivery.NewServer(sqlDB, 0, grpcDelivery.NewMetrics(registry))
		g.Go(func() error { return grpcServer.Serve(gctx, lis) })
	}

	logger.Logger.Info().
		Str("port", cfg.HTTP.Port).
		Str("docs", "http://localhost:"+cfg.HTTP.Port+"/api-docs").
		Msg("Electric cars API ready")

	return g.Wait()
}

func newPublisher(cfg config.KafkaConfig) (command.EventPublisher, func(), error) {
	if len(cfg.Brokers) == 0 {
		logger.Logger.Info().Msg("Kafka brokers not configured, events are discarded")
		return command.NoopPublisher{}, func() {}, nil
	}

	publisher, err := kafka.NewPublisher(cfg.Brokers)
	if err != nil {
		return nil, nil, err
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Error closing Kafka publisher")
		}
	}, nil
}

func newIdentity(cfg config.AuthConfig) auth.IdentityProvider {
	identity := auth.NewQueryIdentity(cfg.DefaultUserID)
	if cfg.JWTSecret == "" {
		return identity
	}
	return auth.NewJWTIdentity(cfg.JWTSecret, identity)
}
