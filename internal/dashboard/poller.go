// Package dashboard periodically refreshes the landing-screen counters. The
// browser version used an interval timer that nothing ever stopped; here the
// ticker dies with the context.
package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/thuysan/seapos/internal/api"
	"github.com/thuysan/seapos/internal/models"
)

// Snapshot is one dashboard refresh: the aggregate counters plus the most
// recent orders shown under them.
type Snapshot struct {
	Stats        models.DashboardStats
	RecentOrders []models.Order
	FetchedAt    time.Time
}

// Source is the slice of the API client the poller needs.
type Source interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ListOrders(ctx context.Context, filter api.OrderFilter) ([]models.Order, error)
}

// Poller fetches a Snapshot immediately and then on every tick until the
// context is cancelled. Fetch errors are logged and skipped; polling
// continues so a flaky backend only costs one refresh.
type Poller struct {
	source   Source
	interval time.Duration
	logger   *zap.Logger
}

func NewPoller(source Source, interval time.Duration, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{source: source, interval: interval, logger: logger}
}

// Run blocks until ctx is done, invoking onUpdate for every successful fetch.
func (p *Poller) Run(ctx context.Context, onUpdate func(Snapshot)) {
	p.fetch(ctx, onUpdate)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetch(ctx, onUpdate)
		}
	}
}

func (p *Poller) fetch(ctx context.Context, onUpdate func(Snapshot)) {
	stats, err := p.source.DashboardStats(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn("dashboard stats fetch failed", zap.Error(err))
		}
		return
	}
	orders, err := p.source.ListOrders(ctx, api.OrderFilter{Limit: 100})
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn("recent orders fetch failed", zap.Error(err))
		}
		return
	}
	onUpdate(Snapshot{Stats: *stats, RecentOrders: orders, FetchedAt: time.Now()})
}
