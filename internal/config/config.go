package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Kafka    KafkaConfig
	Poller   PollerConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// PollerConfig holds campaign status polling configuration
type PollerConfig struct {
	Interval      time.Duration // Time between poll sweeps over in-progress campaigns
	RemoteTimeout time.Duration // Upper bound on a single ad platform call
	Concurrency   int           // Number of campaigns polled in parallel per sweep
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "alert-events")

	// Poller configuration
	pollInterval := getEnvWithDefault("POLL_INTERVAL", "60s")
	cfg.Poller.Interval, err = time.ParseDuration(pollInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to parse POLL_INTERVAL: %w", err)
	}

	remoteTimeout := getEnvWithDefault("POLL_REMOTE_TIMEOUT", "10s")
	cfg.Poller.RemoteTimeout, err = time.ParseDuration(remoteTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse POLL_REMOTE_TIMEOUT: %w", err)
	}

	pollConcurrency := getEnvWithDefault("POLL_CONCURRENCY", "5")
	cfg.Poller.Concurrency, err = strconv.Atoi(pollConcurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to parse POLL_CONCURRENCY: %w", err)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEB_APP_URI", "http://localhost:3000")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
