package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithOnlyDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/finance_terms?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "postgres://localhost:5432/finance_terms?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 0.20, cfg.GetDownpaymentRate())
	assert.False(t, cfg.Maintenance.ClearEnabled)
	assert.Equal(t, 5*time.Second, cfg.GetHealthTimeout())
	assert.Equal(t, 15*time.Second, cfg.GetReadTimeout())
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/db")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DOWNPAYMENT_RATE", "0.25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.25, cfg.GetDownpaymentRate())
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "3001",
			Host:         "0.0.0.0",
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
		},
		Database: DatabaseConfig{
			URL:             "postgres://localhost/db",
			ConnMaxLifetime: "5m",
		},
		Business: BusinessConfig{DownpaymentRate: "0.20"},
		Maintenance: MaintenanceConfig{
			SnapshotSpec: "0 0 * * * *",
			ClearSpec:    "0 0 0 * * *",
		},
		Health: HealthConfig{Timeout: "5s"},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_CronSpecsRequireSeconds(t *testing.T) {
	// The scheduler registers jobs with a mandatory-seconds parser; a
	// five-field spec must already fail validation
	cfg := validConfig()
	cfg.Maintenance.SnapshotSpec = "0 0 * * *"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Maintenance.ClearSpec = "0 0 * * *"
	assert.Error(t, cfg.Validate())
}

func TestValidate_DownpaymentRate(t *testing.T) {
	cfg := validConfig()
	cfg.Business.DownpaymentRate = "not-a-number"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Business.DownpaymentRate = "1.5"
	assert.Error(t, cfg.Validate())
}
