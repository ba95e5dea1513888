// Package config defines the electric-cars service configuration.
package config

import (
	"time"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/config"
	"github.com/tair/electric-cars/pkg/database"
)

type HTTPConfig struct {
	Port           string        `yaml:"port" env:"HTTP_PORT"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

type GRPCConfig struct {
	Enabled bool   `yaml:"enabled" env:"GRPC_ENABLED"`
	Port    string `yaml:"port" env:"GRPC_PORT"`
}

type RedisConfig struct {
	Addr          string        `yaml:"addr" env:"REDIS_ADDR"`
	Password      string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB            int           `yaml:"db" env:"REDIS_DB"`
	RateLimit     int           `yaml:"rate_limit" env:"RATE_LIMIT_REQUESTS"`
	RateLimitSpan time.Duration `yaml:"rate_limit_window" env:"RATE_LIMIT_WINDOW_SECONDS"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`
}

type TracingConfig struct {
	Enabled        bool   `yaml:"enabled" env:"TRACING_ENABLED"`
	JaegerEndpoint string `yaml:"jaeger_endpoint" env:"JAEGER_ENDPOINT"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	DefaultUserID string `yaml:"default_user_id" env:"DEFAULT_USER_ID"`
}

// Config is the root service configuration
type Config struct {
	Environment string          `yaml:"environment" env:"ENVIRONMENT"`
	ServiceName string          `yaml:"service_name" env:"SERVICE_NAME"`
	LogLevel    string          `yaml:"log_level" env:"LOG_LEVEL"`
	HTTP        HTTPConfig      `yaml:"http"`
	GRPC        GRPCConfig      `yaml:"grpc"`
	Database    database.Config `yaml:"database"`
	Redis       RedisConfig     `yaml:"redis"`
	Kafka       KafkaConfig     `yaml:"kafka"`
	Tracing     TracingConfig   `yaml:"tracing"`
	Auth        AuthConfig      `yaml:"auth"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Environment: "development",
		ServiceName: "electric-cars-api",
		LogLevel:    "info",
		HTTP: HTTPConfig{
			Port:           "5001",
			AllowedOrigins: []string{"*"},
		},
		GRPC: GRPCConfig{Port: "50051"},
		Database: database.Config{
			Driver:       database.DriverMySQL,
			Host:         "127.0.0.1",
			User:         "root",
			Name:         "electric_cars_db",
			MaxOpenConns: 10,
			AutoMigrate:  true,
		},
		Redis: RedisConfig{
			RateLimit:     100,
			RateLimitSpan: time.Minute,
		},
		Auth: AuthConfig{DefaultUserID: domain.DefaultUserID},
	}
}

// Load reads .env, the optional CONFIG_FILE and the environment on top of Default.
func Load() (Config, error) {
	cfg := Default()
	if err := config.Load(&cfg, ".env"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
