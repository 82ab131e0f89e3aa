package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/akhbar-tech/internal/app"
	"github.com/samvad-hq/akhbar-tech/internal/config"
	"github.com/samvad-hq/akhbar-tech/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "akhbar start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("akhbar starting", "config", cfg.Redacted())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize app", "error", err.Error())
		return err
	}

	if err := a.Run(ctx); err != nil {
		return fmt.Errorf("app run: %w", err)
	}
	return nil
}
