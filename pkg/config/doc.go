// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: a .env
// file in the working directory is loaded once (missing files are fine), then
// env.Parse fills the struct from its `env` tags. Each configuration type is
// parsed once per process and served from a cache afterwards.
//
//	type Config struct {
//	    Env          string `env:"APP_ENV" envDefault:"development"`
//	    PrefillEmail string `env:"SIGNUP_PREFILL_EMAIL"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadFiles loads additional dotenv files before parsing. Reset clears the
// cache, which tests use to parse the same type under a different environment.
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig so callers can match them
// with errors.Is while still seeing the field level details from env.
package config
