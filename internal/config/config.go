package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config describes all runtime settings for the game.
//
// It is loaded once in main, overridden by flags, validated, and passed down
// explicitly.
type Config struct {
	Env string `env:"APP_ENV" envDefault:"dev"` // dev|prod

	Log struct {
		Format string `env:"LOG_FORMAT" envDefault:"text"` // text|json
		Level  string `env:"LOG_LEVEL" envDefault:"warn"`
	}

	Game struct {
		CodeLength int    `env:"CRUMPETS_CODE_LENGTH" envDefault:"8"`
		MaxGuesses int    `env:"CRUMPETS_MAX_GUESSES" envDefault:"10"`
		Alphabet   string `env:"CRUMPETS_ALPHABET" envDefault:"abcdefghijklmnopqrstuvwxyz0123456789"`
		Hints      int    `env:"CRUMPETS_HINTS" envDefault:"3"`
		FixedCode  string `env:"CRUMPETS_FIXED_CODE"`
		Seed       uint64 `env:"CRUMPETS_SEED"` // 0 => seeded from the clock
	}

	UI struct {
		Color bool `env:"CRUMPETS_COLOR" envDefault:"true"`
	}
}

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// LoadFromEnv parses the environment. It does not validate: callers apply
// their overrides first and then call Validate.
func LoadFromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.Game.Alphabet == "" {
		c.Game.Alphabet = defaultAlphabet
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Game.CodeLength <= 0 {
		return fmt.Errorf("CRUMPETS_CODE_LENGTH must be positive, got %d", c.Game.CodeLength)
	}
	if c.Game.MaxGuesses <= 0 {
		return fmt.Errorf("CRUMPETS_MAX_GUESSES must be positive, got %d", c.Game.MaxGuesses)
	}
	if c.Game.Hints < 0 {
		return fmt.Errorf("CRUMPETS_HINTS must not be negative, got %d", c.Game.Hints)
	}
	return nil
}

func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("unsupported LOG_LEVEL=%q: %w", c.Log.Level, err)
	}
	return lvl, nil
}
