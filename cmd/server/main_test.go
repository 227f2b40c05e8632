package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/client-task-api/internal/config"
	"github.com/yukikurage/client-task-api/internal/testutil"
)

func TestRun_ReturnsSetupErrorAfterOpeningDatabase(t *testing.T) {
	cfg := &config.Config{
		Port:           "0",
		GinMode:        "test",
		LogLevel:       "error",
		DBDriver:       config.DriverSQLite,
		DBPath:         filepath.Join(t.TempDir(), "tasks.db"),
		JWTSecret:      "secret",
		TokenTTL:       time.Hour,
		CORSOrigins:    []string{"*"},
		RedisHost:      "127.0.0.1",
		RedisPort:      "1",
		AuthRateLimit:  5,
		AuthRateWindow: time.Minute,
		ServiceName:    "client-task-api-test",
	}

	err := run(cfg, testutil.Logger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
	assert.FileExists(t, cfg.DBPath)
}
