package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// NOTIFIER_ADDR is host:port of a running notifier. The suite is skipped without it.
	NotifierAddr string `envconfig:"NOTIFIER_ADDR"`
	JWTSecret    string `envconfig:"JWT_SECRET"`
	// E2E_DEBUG_JSON dumps every frame and response body
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
