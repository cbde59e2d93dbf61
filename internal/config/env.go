package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings read from FLAP_* environment variables.
// Command-line flags take precedence over these.
type Env struct {
	SaveDir    string `env:"FLAP_SAVE_DIR" envDefault:"~/.flap/saves"`
	DBPath     string `env:"FLAP_DB" envDefault:"~/.flap/history.db"`
	ConfigPath string `env:"FLAP_CONFIG"`
	FPS        int    `env:"FLAP_FPS" envDefault:"60"`
	Seed       int64  `env:"FLAP_SEED"`
	LogLevel   string `env:"FLAP_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"FLAP_LOG_FILE" envDefault:"~/.flap/flap.log"`
}

// ParseEnv loads Env from the environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.FPS <= 0 {
		return Env{}, invalid("FLAP_FPS", e.FPS, "must be positive")
	}
	return e, nil
}
