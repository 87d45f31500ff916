package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"wildfires-dashboard/internal/config"
	"wildfires-dashboard/internal/dataset"
	"wildfires-dashboard/internal/db"
	"wildfires-dashboard/internal/httpapi"
	wildfire "wildfires-dashboard/internal/modules/wildfire"
	"wildfires-dashboard/internal/modules/wildfire/views"
	"wildfires-dashboard/internal/observability"
)

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"staticDir", cfg.StaticDir,
		"dataPath", cfg.DataPath,
		"dbMaxOpenConns", cfg.MaxOpenConns,
		"dbMaxIdleConns", cfg.MaxIdleConns,
		"dbConnMaxLifetime", cfg.ConnMaxLifetime,
	)

	// The dataset is loaded exactly once and never mutated afterwards. A load
	// failure is fatal: the dashboard never serves a partial dataset.
	ds, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return err
	}
	slog.Info("dataset loaded", "rows", len(ds))

	dbConn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := db.Close(dbConn)
		if closeErr != nil {
			slog.Error("db close", "error", closeErr)
		}
	}()

	if err := views.LoadTemplates(); err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	metrics.DatasetRows.Set(float64(len(ds)))

	mux := httpapi.NewMux(dbConn, cfg.StaticDir)
	if err := wildfire.RegisterFeature(mux, dbConn, ds, metrics); err != nil {
		return err
	}

	srv := httpapi.NewServer(cfg, mux)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
