// cmd/api-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"carrier-sales-api/internal/carriers"
	"carrier-sales-api/internal/common/config"
	"carrier-sales-api/internal/common/logger"
	"carrier-sales-api/internal/common/observability"
	"carrier-sales-api/internal/loads"
	"carrier-sales-api/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting carrier sales API...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Load dataset (read once, immutable afterwards) ---
	store, err := buildLoadStore(ctx, cfg)
	if err != nil {
		zapLog.Fatal("load dataset init failed", zap.Error(err))
	}
	zapLog.Info("load dataset ready",
		zap.String("source", cfg.Loads.Source),
		zap.Int("loads", store.Len()),
	)

	// --- Carrier registry collaborator ---
	registry := buildRegistry(cfg)
	verifier := carriers.NewVerifier(registry, log)

	srv := server.New(store, verifier, log, obs)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		zapLog.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("server stopped")
}

// buildLoadStore reads the tabular dataset from the configured source and
// indexes it in memory.
func buildLoadStore(ctx context.Context, cfg *config.Config) (*loads.MemoryStore, error) {
	var (
		records []loads.Load
		err     error
	)

	switch cfg.Loads.Source {
	case "postgres":
		db, openErr := loads.OpenPostgres(cfg.Loads.Postgres)
		if openErr != nil {
			return nil, openErr
		}
		defer db.Close()
		records, err = loads.FetchLoads(ctx, db)
	default:
		records, err = loads.ReadCSVFile(cfg.Loads.CSVPath)
	}
	if err != nil {
		return nil, err
	}

	return loads.NewMemoryStore(records)
}

func buildRegistry(cfg *config.Config) carriers.Registry {
	if cfg.FMCSA.Mode == "live" {
		return carriers.NewFMCSAClient(cfg.FMCSA.BaseURL, cfg.FMCSA.WebKey, config.GetDuration(cfg.FMCSA.Timeout))
	}
	return carriers.DefaultStaticRegistry()
}
