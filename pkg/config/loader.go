package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotenv = ".env"

// Option configures Load.
type Option func(*options)

type options struct {
	prefix      string
	dotenv      []string
	environment map[string]string
}

// WithPrefix prepends prefix to every variable name, so `env:"LOG_LEVEL"`
// with prefix "PLVALIDATE_" reads PLVALIDATE_LOG_LEVEL.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithDotenv replaces the default ".env" with the given files.
// Earlier files take precedence over later ones.
func WithDotenv(paths ...string) Option {
	return func(o *options) { o.dotenv = paths }
}

// WithEnvironment parses env instead of the process environment and skips
// dotenv loading. Intended for tests.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) { o.environment = env }
}

// Load fills v from the environment.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{dotenv: []string{defaultDotenv}}
	for _, opt := range opts {
		opt(&o)
	}

	if o.environment == nil {
		if err := loadDotenv(o.dotenv); err != nil {
			return err
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadDotenv(paths []string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingDotenv, fmt.Errorf("%s: %w", path, err))
		}
	}
	return nil
}
