// Package config reads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server and CLI configuration. A .env file in the working
// directory is loaded before parsing.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	GinMode      string `env:"GIN_MODE" envDefault:"debug"`
	StaticDir    string `env:"FOLIO_STATIC_DIR" envDefault:"./static"`
	ImagesDir    string `env:"FOLIO_IMAGES_DIR" envDefault:"./images"`
	PDFDir       string `env:"FOLIO_PDF_DIR" envDefault:"./pdf"`
	PrefsDB      string `env:"FOLIO_PREFS_DB" envDefault:"folio.db"`
	Metrics      bool   `env:"FOLIO_METRICS" envDefault:"true"`
	CookieSecure bool   `env:"FOLIO_COOKIE_SECURE" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
