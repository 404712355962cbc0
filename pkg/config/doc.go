// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so repeated loads are cheap.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ResetCache clears the cache, which tests use after changing variables.
//
// # Usage
//
//	type Config struct {
//	    URLSchemes      []string `env:"VALIDATORS_URL_SCHEMES" envSeparator:","`
//	    TimestampLayout string   `env:"VALIDATORS_TIMESTAMP_LAYOUT" envDefault:"2006-01-02T15:04:05Z07:00"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
