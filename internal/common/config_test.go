package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, 4, cfg.Worker.Workers)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/quotes")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("QUEUE_WORKERS", "8")
	t.Setenv("OPENAI_TEMPERATURE", "0.5")
	t.Setenv("DB_MAX_CONN_LIFETIME", "10m")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost/quotes", cfg.Database.DSN)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
	assert.Equal(t, 8, cfg.Worker.Workers)
	assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 10*time.Minute, cfg.Database.MaxConnLifetime)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/quotes")
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Server.GRPCAddr = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateDoesNotRequireAPIKey(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/quotes")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := LoadConfig()
	assert.NoError(t, cfg.Validate())
}
