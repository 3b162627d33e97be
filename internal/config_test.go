package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Unmarshal_From_Environ(t *testing.T) {
	req := require.New(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "3001")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("BADGER_FILEPATH", "/tmp/notifications")
	t.Setenv("PERSIST_NOTIFICATIONS", "true")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AUTH_REQUIRED", "false")
	t.Setenv("AUTH_TOKEN_DURATION", "1h")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com,,http://localhost:3000")
	t.Setenv("CONNECTION_BUFFER_SIZE", "64")
	t.Setenv("SINK_TIMEOUT", "2s")
	t.Setenv("IDLE_TIMEOUT", "1m")
	t.Setenv("RESTART_INTERVAL", "500ms")
	t.Setenv("REPORT_INTERVAL", "30s")
	t.Setenv("RETENTION_PERIOD", "720h")
	t.Setenv("RETENTION_INTERVAL", "1h")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("0.0.0.0:3001", config.Address())
	req.True(config.PersistNotifications)
	req.False(config.AuthRequired)
	req.Equal(time.Hour, config.AuthTokenDuration)
	req.Equal(30*24*time.Hour, config.RetentionPeriod)
	req.Nil(config.DebugPort)
	req.Equal([]string{"http://localhost:3000", "https://app.example.com"}, config.Origins())
}

func TestConfig_Missing_Required_Keys(t *testing.T) {
	req := require.New(t)

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.Error(err)
}

func TestConfig_Origins_Empty(t *testing.T) {
	req := require.New(t)
	req.Empty(Config{}.Origins())
	req.Equal([]string{"*"}, Config{AllowedOrigins: " * "}.Origins())
}
