// Package config loads typed configuration from the process environment.
//
// Values come from environment variables, optionally seeded from one or more
// `.env` files through github.com/joho/godotenv, and are parsed into tagged
// structs with github.com/caarlos0/env/v11. Each struct type is parsed once
// and cached for the lifetime of the process, so every package can ask for its
// own Config without coordinating with the others:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Binaries usually compose the per-package structs into one and call
// MustLoad at startup. Tests can drop the cache with Reset or re-parse a
// single type with Reload after changing the environment.
package config
