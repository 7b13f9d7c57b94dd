package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/welcome-api/internal/config"
	"github.com/janisto/welcome-api/internal/platform/grpchealth"
	applog "github.com/janisto/welcome-api/internal/platform/logging"
	"github.com/janisto/welcome-api/internal/platform/metrics"
	"github.com/janisto/welcome-api/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config load failed", err)
		os.Exit(1)
	}
	lvl, err := cfg.Level()
	if err != nil {
		applog.LogError(context.Background(), "invalid log level", err)
		os.Exit(1)
	}
	applog.SetLevel(lvl)

	httpLis, err := net.Listen("tcp", cfg.HTTPAddr())
	if err != nil {
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", cfg.HTTPAddr()))
		os.Exit(1)
	}
	var grpcLis net.Listener
	if cfg.GRPC.Enabled {
		grpcLis, err = net.Listen("tcp", cfg.GRPCAddr())
		if err != nil {
			_ = httpLis.Close()
			applog.LogError(context.Background(), "listen failed", err, zap.String("addr", cfg.GRPCAddr()))
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, httpLis, grpcLis); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		stop()
		os.Exit(1)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// run serves HTTP on httpLis and, when grpcLis is non-nil, the gRPC health
// service on grpcLis. It blocks until ctx is done or a server fails, then
// shuts both down within the configured timeout.
func run(ctx context.Context, cfg *config.Config, httpLis, grpcLis net.Listener) error {
	var rec *metrics.Recorder
	if cfg.MetricsEnabled {
		rec = metrics.NewRecorder()
	}
	srv := server.NewHTTPServer(cfg, server.NewRouter(cfg, Version, rec))

	serveErr := make(chan error, 2)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", httpLis.Addr().String()))
		if err := srv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("http serve: %w", err)
		}
	}()

	var health *grpchealth.Server
	if grpcLis != nil {
		health = grpchealth.New(applog.Logger())
		go func() {
			if err := health.Serve(grpcLis); err != nil {
				serveErr <- err
			}
		}()
	}

	var runErr error
	select {
	case runErr = <-serveErr:
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeout.Shutdown)
	defer cancel()
	if health != nil {
		health.SetServing(false)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
		runErr = errors.Join(runErr, err)
	}
	if health != nil {
		if err := health.Shutdown(shutdownCtx); err != nil {
			applog.LogError(shutdownCtx, "grpc shutdown error", err)
			runErr = errors.Join(runErr, err)
		}
	}
	return runErr
}
