// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Every configuration
// struct type is parsed once per process and cached by type:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Use ResetCache in tests after changing the environment.
//
// Errors are sentinel values (ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer) and can be checked with errors.Is.
package config
