package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envServerAddress       = "SERVER_ADDRESS"
	envDatabaseDSN         = "DATABASE_DSN"
	envLogLevel            = "LOG_LEVEL"
	envShutdownTimeout     = "SHUTDOWN_TIMEOUT"
	envPopularDefaultCount = "POPULAR_DEFAULT_COUNT"
)

const (
	defaultServerAddress       = "localhost:8080"
	defaultDatabaseDSN         = ""
	defaultLogLevel            = "info"
	defaultShutdownTimeout     = 10 * time.Second
	defaultPopularDefaultCount = 10
)

type Config struct {
	ServerAddress       string
	DatabaseDSN         string // пустая строка - хранилище в памяти
	LogLevel            string
	ShutdownTimeout     time.Duration
	PopularDefaultCount int
}

// NewConfig читает флаги из args, затем переменные окружения, которые имеют приоритет
func NewConfig(args []string) (*Config, error) {
	cfg := &Config{
		ServerAddress:       defaultServerAddress,
		DatabaseDSN:         defaultDatabaseDSN,
		LogLevel:            defaultLogLevel,
		ShutdownTimeout:     defaultShutdownTimeout,
		PopularDefaultCount: defaultPopularDefaultCount,
	}

	fs := flag.NewFlagSet("filmorate", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Server address")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Database DSN, empty for in-memory storage")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level")
	fs.DurationVar(&cfg.ShutdownTimeout, "t", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg.applyEnv(envServerAddress, &cfg.ServerAddress)
	cfg.applyEnv(envDatabaseDSN, &cfg.DatabaseDSN)
	cfg.applyEnv(envLogLevel, &cfg.LogLevel)
	if err := cfg.applyEnvDuration(envShutdownTimeout, &cfg.ShutdownTimeout); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvInt(envPopularDefaultCount, &cfg.PopularDefaultCount); err != nil {
		return nil, err
	}

	cfg.normalizeServerAddress()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func (c *Config) applyEnvDuration(key string, target *time.Duration) error {
	val, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = d
	return nil
}

func (c *Config) applyEnvInt(key string, target *int) error {
	val, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = n
	return nil
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return errors.New("server address cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.PopularDefaultCount <= 0 {
		return errors.New("popular default count must be positive")
	}
	return nil
}
