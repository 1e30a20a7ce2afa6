package timeutil

import (
	"time"

	"github.com/dmitrymomot/commonkit/pkg/config"
)

// Config selects the zone used to render dates for display.
type Config struct {
	TimeZone string `env:"APP_TIMEZONE" envDefault:"UTC"`
}

// LoadConfig reads Config through the shared config loader.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location resolves the configured zone.
func (c Config) Location() (*time.Location, error) {
	return LoadLocation(c.TimeZone)
}
