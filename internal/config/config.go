// Package config loads daemon configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Serve holds everything the `serve` command needs beyond its flags.
// The resin parameters default to the game's values (see
// internal/constants); the gateway URL is required unless delivery runs
// in dry-run mode.
type Serve struct {
	ListenAddr   string        `env:"RESINABOT_LISTEN_ADDR" envDefault:":8080"`
	PollInterval time.Duration `env:"RESINABOT_POLL_INTERVAL" envDefault:"1m"`
	ResinCap     int           `env:"RESINABOT_RESIN_CAP" envDefault:"200"`
	RegenPerMin  float64       `env:"RESINABOT_REGEN_PER_MIN" envDefault:"0.125"`
	GatewayURL   string        `env:"RESINABOT_GATEWAY_URL"`
	GatewayToken string        `env:"RESINABOT_GATEWAY_TOKEN"`
}

// LoadServe parses the environment.
func LoadServe() (Serve, error) {
	var cfg Serve
	if err := env.Parse(&cfg); err != nil {
		return Serve{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects parameter combinations the model cannot work with.
func (c Serve) Validate() error {
	if c.ResinCap < 1 {
		return fmt.Errorf("resin cap must be positive")
	}
	if c.RegenPerMin <= 0 {
		return fmt.Errorf("regeneration rate must be positive")
	}
	if c.PollInterval < time.Second {
		return fmt.Errorf("poll interval must be at least one second")
	}
	return nil
}
