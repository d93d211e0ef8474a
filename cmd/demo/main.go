package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/notifykit/notifykit"
	"github.com/notifykit/notifykit/pkg/config"
	"github.com/notifykit/notifykit/pkg/logger"
)

type demoConfig struct {
	LogLevel  slog.Level    `env:"DEMO_LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"DEMO_LOG_FORMAT" envDefault:"text"`
}

func main() {
	var cfg demoConfig
	config.MustLoad(&cfg)

	lg := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithAttr(logger.Component("demo")),
	)
	logger.SetAsDefault(lg)

	err := notifykit.Run(context.Background(), os.Stdout, notifykit.DefaultScript(), notifykit.WithLogger(lg))
	if err != nil {
		log.Fatalf("Demo run failed: %v", err)
	}
}
