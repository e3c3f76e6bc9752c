// Package config loads typed configuration from environment variables.
//
// Structs are annotated with `env` tags understood by
// github.com/caarlos0/env/v11. The first Load call also reads ./.env through
// github.com/joho/godotenv; explicit files can be loaded with LoadEnv.
// Each configuration type is parsed once and cached for the process lifetime.
//
//	type Config struct {
//	    Env        string `env:"APP_ENV" envDefault:"development"`
//	    SchemaFile string `env:"SCHEMA_FILE"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Tests that change the environment between loads call ResetCache.
package config
