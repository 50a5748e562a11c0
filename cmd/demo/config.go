package main

import (
	"log/slog"

	"github.com/dmitrymomot/signalkit/core/signal"
)

// Config is loaded from the environment (and .env) at start-up.
type Config struct {
	AppName    string     `env:"APP_NAME" envDefault:"signal-demo"`
	Iterations int        `env:"DEMO_ITERATIONS" envDefault:"2"`
	Workers    int        `env:"DEMO_WORKERS" envDefault:"4"`
	LogLevel   slog.Level `env:"DEMO_LOG_LEVEL" envDefault:"info"`
	JSONLogs   bool       `env:"DEMO_JSON_LOGS" envDefault:"false"`
	Signal     signal.Config
}
