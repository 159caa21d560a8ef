// Package config resolves front-end settings from a .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel = "LINEFALL_LOG_LEVEL"
	EnvSeed     = "LINEFALL_SEED"
	EnvScale    = "LINEFALL_SCALE"
	EnvDebug    = "LINEFALL_DEBUG"
	EnvNextPage = "LINEFALL_NEXT_PAGE"

	DefaultNextPage = "2ndpage.html"
)

// Config holds the settings shared by the front-ends.
type Config struct {
	LogLevel zerolog.Level
	// Seed seeds the piece generator. Zero picks a random seed.
	Seed uint64
	// Scale multiplies the window size.
	Scale float64
	// Debug enables the developer overlay.
	Debug bool
	// NextPage is where the browser build navigates after a win.
	NextPage string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: zerolog.InfoLevel,
		Scale:    1,
		NextPage: DefaultNextPage,
	}
}

// Load reads .env from the working directory if present, then the
// environment, then parses args (without the program name).
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return Parse(name, args, os.LookupEnv)
}

// Parse resolves settings from lookup and args without touching .env.
func Parse(name string, args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	level := fs.String("log-level", cfg.LogLevel.String(), "Log level (trace, debug, info, warn, error).")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Piece generator seed; 0 picks one at random.")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Window scale factor.")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the developer overlay.")
	fs.StringVar(&cfg.NextPage, "next-page", cfg.NextPage, "Page opened after a win in the browser build.")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parsing flags: %w", err)
	}

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("invalid -log-level: %w", err)
	}
	cfg.LogLevel = lvl

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		c.LogLevel = lvl
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvScale); ok && v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvScale, err)
		}
		c.Scale = scale
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}
	if v, ok := lookup(EnvNextPage); ok && v != "" {
		c.NextPage = v
	}
	return nil
}

// ErrInvalidScale is returned for a non-positive scale.
var ErrInvalidScale = errors.New("scale must be positive")

// Validate checks ranges that parsing alone does not enforce.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.Scale)
	}
	return nil
}
