package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"campaign-dash/internal/core/domain"
	"campaign-dash/internal/core/export"
	"campaign-dash/internal/core/port"
	"campaign-dash/internal/core/query"
	"campaign-dash/internal/core/widget"
	"campaign-dash/internal/metrics"
)

// DashboardUseCase implements port.DashboardUseCase. It loads the campaign
// record set once, validates it and serves every query from that read-only
// copy.
type DashboardUseCase struct {
	repo  port.CampaignRepository
	prefs port.PreferenceStore
	board *widget.Board

	// now stamps PDF exports; replaced in tests.
	now func() time.Time

	mu      sync.RWMutex
	records []domain.CampaignRecord
	loaded  bool
}

// NewDashboardUseCase creates a use case over the given repository,
// preference store and widget board.
func NewDashboardUseCase(repo port.CampaignRepository, prefs port.PreferenceStore, board *widget.Board) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, prefs: prefs, board: board, now: time.Now}
}

// recordSet returns the cached records, loading them on first use. A load
// failure is not cached, the next call retries.
func (u *DashboardUseCase) recordSet(ctx context.Context) ([]domain.CampaignRecord, error) {
	u.mu.RLock()
	if u.loaded {
		records := u.records
		u.mu.RUnlock()
		return records, nil
	}
	u.mu.RUnlock()

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.loaded {
		return u.records, nil
	}
	records, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	u.records, u.loaded = records, true
	return records, nil
}

func (u *DashboardUseCase) load(ctx context.Context) ([]domain.CampaignRecord, error) {
	records, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	if err = domain.ValidateSet(records); err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	metrics.RecordsLoaded.Set(float64(len(records)))
	return records, nil
}

// Reload loads the record set again and swaps it in. On failure the
// previous set stays in place.
func (u *DashboardUseCase) Reload(ctx context.Context) error {
	records, err := u.load(ctx)
	if err != nil {
		return err
	}
	u.mu.Lock()
	u.records, u.loaded = records, true
	u.mu.Unlock()
	return nil
}

// QueryCampaigns evaluates q, clamping an out-of-range page.
func (u *DashboardUseCase) QueryCampaigns(ctx context.Context, q query.Query) (query.Page, error) {
	records, err := u.recordSet(ctx)
	if err != nil {
		return query.Page{}, err
	}
	page := query.Evaluate(records, q)
	if clamped := query.ClampPage(q.Page, page.TotalPages); clamped != q.Page {
		q.Page = clamped
		page = query.Evaluate(records, q)
	}

	result := "hit"
	if page.TotalCount == 0 {
		result = "empty"
	}
	metrics.QueriesTotal.WithLabelValues(string(q.SortField), result).Inc()
	return page, nil
}

// ExportCSV writes the full filtered table as CSV.
func (u *DashboardUseCase) ExportCSV(ctx context.Context, q query.Query, w io.Writer) error {
	rows, err := u.exportRows(ctx, q)
	if err == nil {
		err = export.WriteCSV(w, rows)
	}
	countExport("csv", err)
	return err
}

// ExportPDF writes the full filtered table as a PDF document.
func (u *DashboardUseCase) ExportPDF(ctx context.Context, q query.Query, w io.Writer) error {
	rows, err := u.exportRows(ctx, q)
	if err == nil {
		err = export.WritePDF(w, rows, export.PDFOptions{GeneratedAt: u.now()})
	}
	countExport("pdf", err)
	return err
}

func (u *DashboardUseCase) exportRows(ctx context.Context, q query.Query) ([]domain.CampaignRecord, error) {
	records, err := u.recordSet(ctx)
	if err != nil {
		return nil, err
	}
	rows := query.Filtered(records, q)
	if len(rows) == 0 {
		return nil, export.ErrEmptyExport
	}
	return rows, nil
}

func countExport(format string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, export.ErrEmptyExport):
		result = "empty"
	case err != nil:
		result = "error"
	}
	metrics.ExportsTotal.WithLabelValues(format, result).Inc()
}

// Widgets returns the current dashboard widgets.
func (u *DashboardUseCase) Widgets(_ context.Context) widget.Snapshot {
	return u.board.Snapshot()
}

// RefreshWidgets regenerates the chart series from their baselines.
func (u *DashboardUseCase) RefreshWidgets(_ context.Context) widget.Snapshot {
	return u.board.Refresh()
}

// Preferences returns the stored settings of owner, or the defaults.
func (u *DashboardUseCase) Preferences(ctx context.Context, owner string) (domain.Preferences, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return domain.Preferences{}, port.ErrEmptyOwner
	}
	prefs, err := u.prefs.Load(ctx, owner)
	if errors.Is(err, port.ErrNotFound) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	return prefs.Normalize(), nil
}

// CycleAccent advances the accent colour of owner and saves it.
func (u *DashboardUseCase) CycleAccent(ctx context.Context, owner string) (domain.Preferences, error) {
	return u.update(ctx, owner, func(p domain.Preferences) domain.Preferences {
		return p.NextAccent()
	})
}

// SetTheme saves theme for owner.
func (u *DashboardUseCase) SetTheme(ctx context.Context, owner string, theme domain.Theme) (domain.Preferences, error) {
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return domain.Preferences{}, err
	}
	return u.update(ctx, owner, func(p domain.Preferences) domain.Preferences {
		p.Theme = theme
		return p
	})
}

func (u *DashboardUseCase) update(ctx context.Context, owner string, fn func(domain.Preferences) domain.Preferences) (domain.Preferences, error) {
	prefs, err := u.Preferences(ctx, owner)
	if err != nil {
		return domain.Preferences{}, err
	}
	prefs = fn(prefs)
	if err = u.prefs.Save(ctx, strings.TrimSpace(owner), prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return prefs, nil
}
