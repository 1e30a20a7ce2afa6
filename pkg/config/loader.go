package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of parsing one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// entries maps a configuration type to its parsed value.
	entries sync.Map // map[reflect.Type]*entry

	dotenvOnce sync.Once
)

// loadDotenv reads the default .env file once. A missing file is not an error.
func loadDotenv() {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Load parses environment variables into v using `env` and `envDefault` struct tags.
// Each configuration type is parsed once per process; later calls copy the
// cached value. A failed parse is cached too, so it is reported consistently.
//
//	type BarcodeConfig struct {
//		Width int `env:"BARCODE_WIDTH" envDefault:"256"`
//	}
//
//	var cfg BarcodeConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()

	key := reflect.TypeFor[T]()
	e, _ := entries.LoadOrStore(key, &entry{})
	ent := e.(*entry)

	ent.once.Do(func() {
		parsed, err := Parse[T]()
		if err != nil {
			ent.err = err
			return
		}
		ent.value = parsed
	})

	if ent.err != nil {
		return ent.err
	}
	cached, ok := ent.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse reads the environment into a fresh T without touching the cache.
func Parse[T any]() (T, error) {
	loadDotenv()
	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
