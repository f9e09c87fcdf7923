package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/cache"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Engine holds the settings of the validation engine and its logger.
type Engine struct {
	Encoding        string `env:"FIELDKIT_ENCODING" envDefault:"UTF-8"`
	RegexpCacheSize int    `env:"FIELDKIT_REGEXP_CACHE_SIZE" envDefault:"256"`
	StrictFlags     bool   `env:"FIELDKIT_STRICT_FLAGS" envDefault:"false"`

	LogLevel  string `env:"FIELDKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FIELDKIT_LOG_FORMAT" envDefault:"text"`
	Env       string `env:"FIELDKIT_ENV" envDefault:"development"`
}

// LoadEngine loads and checks the engine configuration.
func LoadEngine() (Engine, error) {
	var cfg Engine
	if err := Load(&cfg); err != nil {
		return Engine{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Engine{}, err
	}
	return cfg, nil
}

// Validate reports values that would make the engine misbehave.
func (c Engine) Validate() error {
	if _, err := sanitizer.LookupCharset(c.Encoding); err != nil {
		return fmt.Errorf("%w: FIELDKIT_ENCODING %q: %w", ErrInvalidConfig, c.Encoding, err)
	}
	if c.RegexpCacheSize <= 0 {
		return fmt.Errorf("%w: FIELDKIT_REGEXP_CACHE_SIZE must be positive, got %d", ErrInvalidConfig, c.RegexpCacheSize)
	}
	switch logger.Format(strings.ToLower(c.LogFormat)) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: FIELDKIT_LOG_FORMAT %q", ErrInvalidConfig, c.LogFormat)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: FIELDKIT_LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// NormalizeOptions translates the configuration into rule construction options.
// Every call allocates a fresh pattern cache of the configured size.
func (c Engine) NormalizeOptions() []validator.NormalizeOption {
	opts := []validator.NormalizeOption{
		validator.WithDefaultEncoding(c.Encoding),
		validator.WithPatternCache(cache.NewPatterns(c.RegexpCacheSize)),
	}
	if c.StrictFlags {
		opts = append(opts, validator.WithStrictFlags())
	}
	return opts
}

// LoggerOptions translates the configuration into logger options.
// Explicit level and format win over the environment defaults.
func (c Engine) LoggerOptions() []logger.Option {
	return []logger.Option{
		logger.WithEnvironment(c.Env),
		logger.WithLevelName(c.LogLevel),
		logger.WithFormat(logger.Format(c.LogFormat)),
	}
}

// ValidatorOptions returns the validator options for the given logger.
func (c Engine) ValidatorOptions(log *slog.Logger) []validator.Option {
	return []validator.Option{validator.WithLogger(log)}
}
