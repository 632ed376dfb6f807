package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// store holds one parsed value per configuration type.
type store struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	cache      = &store{values: make(map[reflect.Type]any)}
	dotenvOnce sync.Once
)

// Load fills v from the process environment using `env` struct tags.
//
// The first call loads ./.env if it exists. Each struct type is parsed once;
// later calls for the same type copy the cached value into v. Fields that are
// already set on v and have no matching variable or default keep their value.
//
//	type Config struct {
//		Env    string       `env:"APP_ENV" envDefault:"development"`
//		Locale language.Tag `env:"ESSENTIALS_LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, typ)
	}

	if cached, ok := cache.get(typ); ok {
		*v = cached.(T)
		return nil
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	// Another goroutine may have parsed the type while we waited.
	if cached, ok := cache.values[typ]; ok {
		*v = cached.(T)
		return nil
	}

	parsed := *v
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.values[typ] = parsed
	*v = parsed

	return nil
}

// MustLoad is like Load but panics on error. Use it for configuration the
// program cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Cached returns the previously loaded value of type T.
func Cached[T any]() (T, error) {
	var zero T
	cached, ok := cache.get(reflect.TypeFor[T]())
	if !ok {
		return zero, ErrConfigNotLoaded
	}
	return cached.(T), nil
}

// Reload drops the cached value of type T and parses the environment again.
func Reload[T any](v *T) error {
	cache.mu.Lock()
	delete(cache.values, reflect.TypeFor[T]())
	cache.mu.Unlock()

	return Load(v)
}

// ResetCache forgets every loaded configuration.
func ResetCache() {
	cache.mu.Lock()
	clear(cache.values)
	cache.mu.Unlock()
}

// LoadEnv loads the given .env files into the process environment. Variables
// that are already set are not overridden, and earlier files win over later
// ones.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

func (s *store) get(typ reflect.Type) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[typ]
	return v, ok
}
