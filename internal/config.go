package internal

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Host                 string        `env:"HOST,required=true"`
	Port                 int           `env:"PORT,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	PersistNotifications bool          `env:"PERSIST_NOTIFICATIONS,required=true"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	AuthRequired         bool          `env:"AUTH_REQUIRED,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	IdleTimeout          time.Duration `env:"IDLE_TIMEOUT"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	ReportInterval       time.Duration `env:"REPORT_INTERVAL,required=true"`
	RetentionPeriod      time.Duration `env:"RETENTION_PERIOD,required=true"`
	RetentionInterval    time.Duration `env:"RETENTION_INTERVAL,required=true"`
	DebugPort            *int          `env:"DEBUG_PORT"`
}

// Origins splits ALLOWED_ORIGINS on commas, dropping blanks and duplicates.
func (c Config) Origins() []string {
	parts := lo.Map(strings.Split(c.AllowedOrigins, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Uniq(lo.Compact(parts))
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
