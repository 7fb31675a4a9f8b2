// Package config loads process configuration from environment variables into
// tagged structs.
//
// It wraps github.com/joho/godotenv, which seeds the environment from dotenv
// files, and github.com/caarlos0/env/v11, which parses the environment into a
// struct using `env` and `envDefault` tags. Variables already present in the
// environment always win over dotenv values.
//
// # Usage
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("PLVALIDATE_")); err != nil {
//	    // handle error
//	}
//
// Without WithDotenv, Load looks for ".env" in the working directory and
// silently skips it when absent. Missing files named explicitly through
// WithDotenv are skipped as well; unreadable or malformed files are errors.
package config
