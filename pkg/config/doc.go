// Package config loads configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files, later files overriding earlier ones.
//   - Load parses the environment into any struct annotated with env tags and
//     caches the result per type. The default .env file is read once if present.
//   - ResetCache clears the cache, which tests use after t.Setenv.
//
// # Engine settings
//
// Engine describes the settings of the validation engine:
//
//	FIELDKIT_ENCODING           default string encoding (UTF-8)
//	FIELDKIT_REGEXP_CACHE_SIZE  compiled pattern cache capacity (256)
//	FIELDKIT_STRICT_FLAGS       reject unknown rule flags (false)
//	FIELDKIT_LOG_LEVEL          debug, info, warn or error (info)
//	FIELDKIT_LOG_FORMAT         text or json (text)
//	FIELDKIT_ENV                development, staging or production
//
// Typical startup:
//
//	cfg, err := config.LoadEngine()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lg := logger.New(cfg.LoggerOptions()...)
//	rules, err := validator.ParseRuleSetYAML(src, cfg.NormalizeOptions()...)
//	v := validator.New(cfg.ValidatorOptions(lg)...)
//
// # Errors
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – an explicit .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load.
//   - ErrInvalidConfig  – a parsed value is out of range.
package config
