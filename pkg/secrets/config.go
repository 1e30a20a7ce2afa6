package secrets

import "github.com/dmitrymomot/commonkit/pkg/config"

// Config carries the application key and certificate defaults.
type Config struct {
	AppKey             string `env:"SECRETS_APP_KEY"`
	CertValidityMonths int    `env:"SECRETS_CERT_VALIDITY_MONTHS" envDefault:"12"`
}

// LoadConfig reads Config through the shared config loader.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Key decodes the configured application key.
func (c Config) Key() ([]byte, error) {
	return DecodeKey(c.AppKey)
}
