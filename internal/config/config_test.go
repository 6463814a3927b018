package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *Config {
	return &Config{
		ServerPort:        "8080",
		RequestTimeout:    30 * time.Second,
		DatabaseURL:       "postgres://localhost:5432/calc",
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		ScenarioListScope: ScopeOwner,
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, baseConfig().Validate())
}

func TestValidate_SecretRequired(t *testing.T) {
	cfg := baseConfig()
	cfg.JWTSecret = ""
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

	cfg.JWTSecret = "   "
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")
}

func TestValidate_DatabaseURLRequired(t *testing.T) {
	cfg := baseConfig()
	cfg.DatabaseURL = ""
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")
}

func TestValidate_ScenarioListScope(t *testing.T) {
	cfg := baseConfig()
	cfg.ScenarioListScope = ScopeGlobal
	require.NoError(t, cfg.Validate())

	cfg.ScenarioListScope = "everyone"
	assert.ErrorContains(t, cfg.Validate(), "SCENARIO_LIST_SCOPE")
}

func TestLoad_FailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/calc")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/calc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, ScopeOwner, cfg.ScenarioListScope)
	assert.Equal(t, "./public", cfg.StaticDir)
}
