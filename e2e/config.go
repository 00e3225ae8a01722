package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// DISPATCHER_ADDR is the host:port of a running dispatcher. Suites skip when empty.
	DispatcherAddr string `envconfig:"DISPATCHER_ADDR"`
	// E2E_DEBUG_FRAMES dumps every frame sent and received
	DebugFrames bool `envconfig:"E2E_DEBUG_FRAMES" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
