package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	logger := cmd.NewLogger(config.LogLevel, os.Stdout)

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

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = startWebServer(ctx, app, config.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server stopped with error: %w", err)
	}
	return nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) error {
	e, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); !errors.Is(startErr, http.ErrServerClosed) {
			errCh <- startErr
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
