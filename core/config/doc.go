// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/signalkit/core/config"
//
//	type DemoConfig struct {
//		Iterations int    `env:"DEMO_ITERATIONS" envDefault:"1"`
//		LogLevel   string `env:"DEMO_LOG_LEVEL" envDefault:"info"`
//		Signal     signal.Config
//	}
//
//	func main() {
//		var cfg DemoConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 signal.Config
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 signal.Config
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	// Each type has its own cache entry
//	config.MustLoad(&signal.Config{})
//	config.MustLoad(&DemoConfig{})
//
// Tests that change the environment call Reset between cases.
package config
