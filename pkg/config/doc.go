// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`) for
//     configuration the process cannot start without.
//   - Allows an explicit cache reset or per-type reload, which is handy in
//     tests.
//
// # Architecture
//
// Internally the package keeps a singleton `configCache` that stores parsed
// struct copies keyed by their fully-qualified type name. Each key also holds
// a `sync.Once` instance guaranteeing the parsing work is executed at most
// once per configuration type even when accessed from multiple goroutines
// concurrently. The exported helpers interact with the cache through a
// `sync.RWMutex`; low-level parsing is delegated to `env.Parse`.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type DemoConfig struct {
//	    LogLevel  string `env:"DEMO_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"DEMO_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg DemoConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to `config.Load(&cfg)` are served from the in-memory cache
// without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   - failed to parse env vars into the struct.
//   - `ErrConfigNotLoaded` - requested config type has not been loaded yet.
//   - `ErrNilPointer`      - nil pointer passed to `Load`/`MustLoad`.
//   - `ErrLoadingEnv`      - an `.env` file could not be read.
//
// # Testing Helpers
//
// Use `Reset()` to clear the global cache between tests, or `Reload(&cfg)` to
// re-parse one struct type after the process environment changes.
package config
