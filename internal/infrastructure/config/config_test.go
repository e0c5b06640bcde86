package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRACKER_DATABASE_DRIVER", "sqlite")
	t.Setenv("TRACKER_DATABASE_DATABASE", ":memory:")
	t.Setenv("TRACKER_AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.GetDSN())
	assert.Equal(t, "test-secret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 6, cfg.Auth.Password.MinLength)
	assert.Equal(t, "embedded", cfg.Auth.Policy.Source)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxFileBytes)
	assert.Same(t, cfg, Get())
}
