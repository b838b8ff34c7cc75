package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/game-management-service/internal/config"
	"github.com/preston-bernstein/game-management-service/internal/logging"
	"github.com/preston-bernstein/game-management-service/internal/server"
)

const serviceName = "game-management-service"

// appVersion is overridden at build time with -ldflags "-X main.appVersion=...".
var appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})
	logger.Info("configuration loaded",
		slog.String("port", cfg.Port),
		slog.Bool("metrics_enabled", cfg.Metrics.Enabled),
		slog.Duration("shutdown_timeout", cfg.ShutdownTimeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
