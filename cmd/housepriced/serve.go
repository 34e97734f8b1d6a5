package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"housepriced/internal/config"
	"housepriced/internal/httpapi"
	"housepriced/internal/manager"
	"housepriced/internal/registry"
	"housepriced/internal/store"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the prediction form and JSON API (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// A missing or unreadable artifact is fatal at startup.
	artifacts, err := registry.LoadDir(cfg.ModelsDir)
	if err != nil {
		return fmt.Errorf("scan models dir %s: %w", cfg.ModelsDir, err)
	}
	rec, err := store.Open(ctx, storeConfig(cfg, log))
	if err != nil {
		return err
	}
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Recorder:  rec,
		Publisher: manager.LogPublisher{Logger: log},
		Logger:    log,
	})
	if err := mgr.LoadModels(artifacts); err != nil {
		_ = mgr.Close(context.Background())
		return fmt.Errorf("load models from %s: %w", cfg.ModelsDir, err)
	}

	configureHTTP(cfg, log)
	httpapi.SetBaseContext(ctx)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("models_dir", cfg.ModelsDir).Str("store", rec.Backend()).Msg("housepriced listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	// Graceful shutdown (Ctrl+C / SIGTERM)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown")
	}
	if err := mgr.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("close store")
	}
	log.Info().Msg("housepriced stopped")
	return nil
}

// configureHTTP pushes the resolved config into the httpapi package knobs.
func configureHTTP(cfg config.Config, log zerolog.Logger) {
	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(requestLogDefault(cfg.LogLevel))
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetPredictTimeoutSeconds(int64(cfg.PredictTimeoutSeconds))
	httpapi.SetCORSOptions(!cfg.CORS.Disabled, cfg.CORS.Origins, nil, nil)
}

// requestLogDefault maps the process log level onto the per-request levels.
func requestLogDefault(level string) string {
	switch level {
	case "trace", "debug":
		return "debug"
	case "warn", "error":
		return "error"
	case "off":
		return "off"
	default:
		return "info"
	}
}
