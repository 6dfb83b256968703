// The worker binary runs the campaign status polling loop without the HTTP
// API. Deploy it separately when poll volume should not share a process
// with request serving.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"adops-server/internal/bootstrap"
	"adops-server/internal/config"
	"adops-server/internal/observability"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := observability.NewLogger()
	logger.Info(ctx, "Starting campaign poll worker...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	schedulerCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- deps.Scheduler.Start(schedulerCtx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down poll worker...")
	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "scheduler stopped with error", err)
	}
	logger.Info(ctx, "Poll worker exited")
}
