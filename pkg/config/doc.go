// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which maps variables
// onto struct fields through `env` tags. Any field type env understands can be
// used, including types implementing encoding.TextUnmarshaler such as
// language.Tag.
//
//	type Config struct {
//	    Env      string       `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string       `env:"LOG_LEVEL" envDefault:"info"`
//	    Locale   language.Tag `env:"ESSENTIALS_LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each struct type is parsed once per process and cached. Reload re-reads a
// single type and ResetCache clears everything, which is mostly useful in
// tests. LoadEnv reads additional .env files before parsing.
//
// Errors are sentinels to be checked with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrInvalidConfigType, ErrConfigNotLoaded and
// ErrNilPointer.
package config
