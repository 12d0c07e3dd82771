package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/polithane")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.ElectionWindows)
	assert.Zero(t, cfg.TopicMatchBase)
	assert.Zero(t, cfg.ViralPotentialBase)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoad_MissingRedisURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/polithane")
	t.Setenv("REDIS_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "REDIS_URL")
}

func TestLoad_ElectionWindows(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ELECTION_WINDOWS", "2026-05-01..2026-06-15=2.0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.ElectionWindows, 1)
	assert.Equal(t, 2.0, cfg.ElectionWindows[0].Factor)
}

func TestLoad_InvalidElectionWindows(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ELECTION_WINDOWS", "not-a-window")

	_, err := Load()
	assert.ErrorContains(t, err, "ELECTION_WINDOWS")
}

func TestLoad_TrendBasesValidated(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOPIC_MATCH_BASE", "150")

	_, err := Load()
	assert.ErrorContains(t, err, "TOPIC_MATCH_BASE")

	t.Setenv("TOPIC_MATCH_BASE", "35.5")
	t.Setenv("VIRAL_POTENTIAL_BASE", "nope")

	_, err = Load()
	assert.ErrorContains(t, err, "VIRAL_POTENTIAL_BASE")
}
