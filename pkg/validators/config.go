package validators

import (
	"time"

	"github.com/dmitrymomot/validators/pkg/chain"
	"github.com/dmitrymomot/validators/pkg/config"
)

// Config tunes the environment-dependent validators.
type Config struct {
	URLSchemes      []string `env:"VALIDATORS_URL_SCHEMES" envSeparator:","`                              // URLSchemes restricts Config.URL to these schemes. Empty allows any scheme.
	TimestampLayout string   `env:"VALIDATORS_TIMESTAMP_LAYOUT" envDefault:"2006-01-02T15:04:05Z07:00"` // TimestampLayout is the Go or strftime layout used by Config.Timestamp.
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// URL returns a URL validator restricted to the configured schemes.
func (c Config) URL() chain.Link[any] {
	return URLWithSchemes(c.URLSchemes...)
}

// Timestamp returns a timestamp validator for the configured layout,
// falling back to RFC 3339.
func (c Config) Timestamp() chain.Link[any] {
	if c.TimestampLayout == "" {
		return Timestamp(time.RFC3339)
	}
	return Timestamp(c.TimestampLayout)
}
