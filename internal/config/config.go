package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Business    BusinessConfig
	Maintenance MaintenanceConfig
	Health      HealthConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Env          string
	ReadTimeout  string
	WriteTimeout string
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type BusinessConfig struct {
	DownpaymentRate string
}

type MaintenanceConfig struct {
	SnapshotSpec string
	ClearEnabled bool
	ClearSpec    string
}

type HealthConfig struct {
	Timeout string
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("SERVER_PORT", "3001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DOWNPAYMENT_RATE", "0.20")
	viper.SetDefault("SCHEDULER_SNAPSHOT_SPEC", "0 0 * * * *")
	viper.SetDefault("MAINTENANCE_CLEAR_ENABLED", false)
	viper.SetDefault("MAINTENANCE_CLEAR_SPEC", "0 0 0 * * *")
	viper.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	// The keys are flat env-style names, so the struct is assembled
	// explicitly rather than unmarshalled.
	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  viper.GetString("SERVER_READ_TIMEOUT"),
			WriteTimeout: viper.GetString("SERVER_WRITE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL:             viper.GetString("DATABASE_URL"),
			MaxOpenConns:    viper.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: viper.GetString("DATABASE_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Business: BusinessConfig{
			DownpaymentRate: viper.GetString("DOWNPAYMENT_RATE"),
		},
		Maintenance: MaintenanceConfig{
			SnapshotSpec: viper.GetString("SCHEDULER_SNAPSHOT_SPEC"),
			ClearEnabled: viper.GetBool("MAINTENANCE_CLEAR_ENABLED"),
			ClearSpec:    viper.GetString("MAINTENANCE_CLEAR_SPEC"),
		},
		Health: HealthConfig{
			Timeout: viper.GetString("HEALTH_CHECK_TIMEOUT"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	// Validate downpayment rate
	rate, err := decimal.NewFromString(c.Business.DownpaymentRate)
	if err != nil {
		return fmt.Errorf("DOWNPAYMENT_RATE must be a valid decimal: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("DOWNPAYMENT_RATE must be between 0 and 1")
	}

	// Validate cron specs with the same mandatory-seconds parser the
	// scheduler runs, so a spec that passes here always registers there
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Maintenance.SnapshotSpec); err != nil {
		return fmt.Errorf("SCHEDULER_SNAPSHOT_SPEC must be a valid cron spec with seconds: %w", err)
	}
	if _, err := parser.Parse(c.Maintenance.ClearSpec); err != nil {
		return fmt.Errorf("MAINTENANCE_CLEAR_SPEC must be a valid cron spec with seconds: %w", err)
	}

	// Validate durations
	for name, value := range map[string]string{
		"SERVER_READ_TIMEOUT":        c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":       c.Server.WriteTimeout,
		"DATABASE_CONN_MAX_LIFETIME": c.Database.ConnMaxLifetime,
		"HEALTH_CHECK_TIMEOUT":       c.Health.Timeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", name, err)
		}
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// GetDownpaymentRate returns the downpayment rate as float64
func (c *Config) GetDownpaymentRate() float64 {
	rate, _ := decimal.NewFromString(c.Business.DownpaymentRate)
	f, _ := rate.Float64()
	return f
}

// GetReadTimeout returns the server read timeout as duration
func (c *Config) GetReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// GetWriteTimeout returns the server write timeout as duration
func (c *Config) GetWriteTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.WriteTimeout)
	return d
}

// GetConnMaxLifetime returns the connection max lifetime as duration
func (c *Config) GetConnMaxLifetime() time.Duration {
	d, _ := time.ParseDuration(c.Database.ConnMaxLifetime)
	return d
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Health.Timeout)
	return timeout
}
