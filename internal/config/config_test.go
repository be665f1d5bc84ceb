package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "HTTP_MODE", "CORS_ORIGINS", "STORAGE_DRIVER", "ROOM_CODE_ATTEMPTS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "RW", cfg.HTTP.Mode)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 10, cfg.Rooms.CodeAttempts)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("HTTP_MODE", "ro")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("ROOM_CODE_ATTEMPTS", "3")
	t.Setenv("REDIS_DB", "2")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "RO", cfg.HTTP.Mode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 3, cfg.Rooms.CodeAttempts)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestFromEnvRejectsUnknownValues(t *testing.T) {
	t.Run("storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("http mode", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("HTTP_MODE", "WO")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestGetintFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ROOM_CODE_ATTEMPTS", "many")
	assert.Equal(t, 10, getint("ROOM_CODE_ATTEMPTS", 10))
}
