package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/attendance-test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.Client.BaseURL)
	assert.Empty(t, cfg.Archive.Dir)
	assert.Equal(t, 24*time.Hour, cfg.Archive.Interval)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "att")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://postgres:secret@db:6543/att?sslmode=disable", cfg.DatabaseURL())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without password", map[string]string{"DB_DRIVER": "postgres", "DB_PASSWORD": ""}},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"bad port", map[string]string{"DB_DRIVER": "sqlite", "APP_PORT": "http"}},
		{"bad timeout", map[string]string{"DB_DRIVER": "sqlite", "ATTENDANCE_API_TIMEOUT": "soon"}},
		{"zero timeout", map[string]string{"DB_DRIVER": "sqlite", "ATTENDANCE_API_TIMEOUT": "0s"}},
		{"zero archive interval", map[string]string{"DB_DRIVER": "sqlite", "ARCHIVE_DIR": "/tmp/a", "ARCHIVE_INTERVAL": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadClient(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("ATTENDANCE_API_URL", "http://api.test/")
	t.Setenv("ATTENDANCE_API_TIMEOUT", "3s")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://api.test", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "DEBUG"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.App.LogLevel = "warning"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())

	cfg.App.LogLevel = ""
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
