package widget

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"campaign-dash/internal/core/domain"
)

// Variances applied by Tick and Refresh.
const (
	tickLineVariance    = 0.1
	tickBarVariance     = 0.15
	refreshLineVariance = 0.2
	refreshBarVariance  = 0.25
)

// Snapshot is a point-in-time copy of every dashboard widget.
type Snapshot struct {
	Metrics     []domain.MetricCard  `json:"metrics"`
	Line        []domain.SeriesPoint `json:"line"`
	Bar         []domain.SeriesPoint `json:"bar"`
	Donut       []domain.SeriesPoint `json:"donut"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

func (s Snapshot) clone() Snapshot {
	s.Metrics = slices.Clone(s.Metrics)
	s.Line = slices.Clone(s.Line)
	s.Bar = slices.Clone(s.Bar)
	s.Donut = slices.Clone(s.Donut)
	return s
}

// Board owns the live widget values. It is safe for concurrent use.
type Board struct {
	mu      sync.RWMutex
	rng     *rand.Rand
	now     func() time.Time
	current Snapshot
}

// NewBoard returns a board holding the default widgets. A nil rng is
// replaced by a randomly seeded one; a nil now uses time.Now.
func NewBoard(rng *rand.Rand, now func() time.Time) *Board {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &Board{
		rng: rng,
		now: now,
		current: Snapshot{
			Metrics:     DefaultMetrics(),
			Line:        DefaultLine(),
			Bar:         DefaultBar(),
			Donut:       DefaultDonut(),
			LastUpdated: now(),
		},
	}
}

// Snapshot returns a copy of the current widgets.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current.clone()
}

// Tick drifts the current line and bar series and redraws the metric
// changes. It is the periodic live update.
func (b *Board) Tick() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current.Line = Perturb(b.current.Line, tickLineVariance, b.rng)
	b.current.Bar = Perturb(b.current.Bar, tickBarVariance, b.rng)
	b.current.Metrics = RandomizeChanges(b.current.Metrics, b.rng)
	b.current.LastUpdated = b.now()
	return b.current.clone()
}

// Refresh regenerates the line and bar series from the defaults with a
// wider variance, discarding accumulated drift.
func (b *Board) Refresh() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current.Line = Perturb(DefaultLine(), refreshLineVariance, b.rng)
	b.current.Bar = Perturb(DefaultBar(), refreshBarVariance, b.rng)
	b.current.LastUpdated = b.now()
	return b.current.clone()
}

// Run calls Tick every interval until ctx is done. Cancelling ctx is the
// teardown; Run then returns nil.
func (b *Board) Run(ctx context.Context, interval time.Duration, logger *slog.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("widget refresher stopped")
			return nil
		case <-ticker.C:
			snap := b.Tick()
			logger.Debug("widgets updated", slog.Time("last_updated", snap.LastUpdated))
		}
	}
}
