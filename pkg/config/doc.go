// Package config loads typed configuration structs from the environment.
//
// Struct fields are described with caarlos0/env tags. A .env file in the
// working directory is loaded once (via joho/godotenv) before the first parse
// and never overrides variables that are already set.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[ServerConfig]()
//
// Load caches one value per type, so repeated calls are cheap and return the
// same snapshot. Parse skips both the cache and the .env file and is what
// tests use with an explicit environment map.
package config
