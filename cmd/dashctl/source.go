package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dash/internal/adapter/dataset"
	"campaign-dash/internal/adapter/memory"
	"campaign-dash/internal/adapter/postgres"
	"campaign-dash/internal/adapter/usecase"
	"campaign-dash/internal/config/configs"
	"campaign-dash/internal/core/port"
	"campaign-dash/internal/core/widget"
	"campaign-dash/internal/db"
)

var errConflictingSources = errors.New("--dataset and --psql are mutually exclusive")

func openPool(ctx context.Context, addr string) (*pgxpool.Pool, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("parse --psql: %w", err)
	}
	return db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
}

// openRepository returns the campaign source selected by the global flags
// and a function releasing it.
func openRepository(ctx context.Context, opts *globalOptions) (port.CampaignRepository, func(), error) {
	switch {
	case opts.dataset != "" && opts.psql != "":
		return nil, nil, errConflictingSources
	case opts.psql != "":
		pool, err := openPool(ctx, opts.psql)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("reading campaigns from postgres")
		return postgres.NewCampaignRepository(pool), pool.Close, nil
	case opts.dataset != "":
		slog.Debug("reading campaigns from file", slog.String("path", opts.dataset))
		return dataset.NewFileRepository(opts.dataset), func() {}, nil
	default:
		return dataset.NewStaticRepository(dataset.Reference()), func() {}, nil
	}
}

// newService wires a dashboard use case over the selected source.
// Preferences and widgets are not used from the command line, so they stay
// in memory.
func newService(ctx context.Context, opts *globalOptions) (*usecase.DashboardUseCase, func(), error) {
	repo, release, err := openRepository(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	svc := usecase.NewDashboardUseCase(repo, memory.NewPreferenceStore(), widget.NewBoard(nil, nil))
	return svc, release, nil
}
