// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads an optional .env file from
// the working directory, and github.com/caarlos0/env/v11, which maps
// variables onto struct fields through `env` and `envDefault` tags.
//
// Load caches each configuration type for the lifetime of the process and is
// safe for concurrent use. Parse skips the cache, which is handy in tests that
// change the environment with t.Setenv.
//
//	type Config struct {
//		Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
