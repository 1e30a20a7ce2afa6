package barcode

import "github.com/dmitrymomot/commonkit/pkg/config"

// Config holds generation defaults loaded from the environment.
type Config struct {
	Format Format `env:"BARCODE_FORMAT" envDefault:"qr"`
	Width  int    `env:"BARCODE_WIDTH" envDefault:"256"`
	Height int    `env:"BARCODE_HEIGHT" envDefault:"256"`
}

// LoadConfig reads Config through the shared config loader.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Generator produces barcodes with fixed format and dimensions.
type Generator struct {
	cfg Config
}

// NewGenerator builds a Generator from cfg.
func NewGenerator(cfg Config) *Generator {
	if cfg.Format == "" {
		cfg.Format = FormatQR
	}
	return &Generator{cfg: cfg}
}

// Generate encodes data using the configured format and size.
func (g *Generator) Generate(data map[string]any) ([]byte, error) {
	return Generate(g.cfg.Format, data, g.cfg.Width, g.cfg.Height)
}

// GenerateFile writes a barcode to a temporary file using the configured format and size.
func (g *Generator) GenerateFile(data map[string]any) (string, error) {
	return GenerateFile(g.cfg.Format, data, g.cfg.Width, g.cfg.Height)
}
