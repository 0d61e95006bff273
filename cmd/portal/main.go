package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ocn-community/volunteer-portal/internal/config"
	"github.com/ocn-community/volunteer-portal/internal/logger"
	"github.com/ocn-community/volunteer-portal/internal/server"
	"github.com/ocn-community/volunteer-portal/internal/upstream"
)

func main() {
	cfg := config.Load()

	logger.Initialize(os.Getenv("LOG_LEVEL"))
	log := logger.Get()

	log.Info("Starting volunteer portal",
		"upstream", cfg.Upstream.BaseURL,
		"port", cfg.Server.Port,
	)

	client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	srv := server.New(cfg, client)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		log.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped")
}
