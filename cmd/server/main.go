package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"campaign-dash/internal/adapter/dataset"
	httpadapter "campaign-dash/internal/adapter/http"
	"campaign-dash/internal/adapter/memory"
	"campaign-dash/internal/adapter/postgres"
	"campaign-dash/internal/adapter/usecase"
	"campaign-dash/internal/config"
	"campaign-dash/internal/config/configs"
	"campaign-dash/internal/core/port"
	"campaign-dash/internal/core/widget"
	"campaign-dash/internal/db"
)

// main is the entry point of the campaign dashboard server. It loads
// configuration, picks the campaign source, starts the HTTP server and the
// live widget refresher, and shuts both down on SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		repo  port.CampaignRepository
		prefs port.PreferenceStore = memory.NewPreferenceStore()
	)
	switch cfg.Dash.Source {
	case configs.SourceFile:
		repo = dataset.NewFileRepository(cfg.Dash.Dataset)
	case configs.SourcePostgres:
		pool, err := openPostgres(ctx, cfg.Psql, logger)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
		prefs = postgres.NewPreferenceStore(pool)
	default:
		repo = dataset.NewStaticRepository(dataset.Reference())
	}
	logger.Info("campaign source selected", slog.String("source", cfg.Dash.Source))

	board := widget.NewBoard(nil, nil)
	svc := usecase.NewDashboardUseCase(repo, prefs, board)

	// Load eagerly so a broken dataset fails at startup, not on the first
	// request.
	if err = svc.Reload(ctx); err != nil {
		logger.Error("load campaigns error", slog.Any("error", err))
		return
	}

	handler := httpadapter.NewHandler(svc, logger, cfg.Dash.PageSize)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return board.Run(gctx, cfg.Dash.RefreshInterval, logger)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	exitCode = 0
}

// openPostgres connects to PostgreSQL, applying migrations and the reference
// seed when configured.
func openPostgres(ctx context.Context, cfg configs.Postgres, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.RunMigrations {
		if err := db.Migrate(cfg.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Seed {
		if err = db.Seed(ctx, pool, dataset.Reference()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("reference campaigns seeded")
	}
	return pool, nil
}
