package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"freight/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := cmd.NewLogger(config.LogLevel, os.Stderr)

	store, closeStore, err := cmd.OpenActivityStore(config)
	if err != nil {
		return fmt.Errorf("failed to open activity store: %w", err)
	}
	defer func() {
		_ = closeStore()
	}()

	app, err := cmd.NewCompositionRoot(config, store, logger)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.CreateCLIApp(os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("CLI stopped with error: %w", err)
	}
	return nil
}
