package main

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"chilldrive/internal/logger"
	"chilldrive/pkg/config"
	"chilldrive/pkg/engine"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	logLevel := flag.String("log-level", "", "Override configured log level")
	logFile := flag.String("log-file", "", "Also write the log to this file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		// Defaults still apply when the file is missing
		logger.NewLogger("warn").Warnf("%v", err)
	}

	var log *logger.Logger
	if *logFile != "" {
		log, err = logger.NewMultiLogger(cfg.Sim.LogLevel, *logFile)
		if err != nil {
			logger.NewLogger("fatal").Fatalf("%v", err)
		}
		// ANSI codes would litter the file
		log.EnableColors(false)
	} else {
		log = logger.NewLogger(cfg.Sim.LogLevel)
	}
	defer log.Close()

	if *logLevel != "" {
		log.SetLevel(*logLevel)
	}
	log.Info("starting chilldrive...")

	sim, err := engine.New(cfg, log)
	if err != nil {
		log.Fatalf("failed to initialize engine: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("engine initialized, starting drive loop...")
	if err := sim.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("engine stopped: %v", err)
	}
}
