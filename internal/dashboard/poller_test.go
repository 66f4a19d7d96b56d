package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thuysan/seapos/internal/api"
	"github.com/thuysan/seapos/internal/models"
)

type fakeSource struct {
	statsCalls atomic.Int64
	failStats  atomic.Bool
}

func (f *fakeSource) DashboardStats(context.Context) (*models.DashboardStats, error) {
	f.statsCalls.Add(1)
	if f.failStats.Load() {
		return nil, errors.New("backend down")
	}
	return &models.DashboardStats{TodayOrders: int(f.statsCalls.Load())}, nil
}

func (f *fakeSource) ListOrders(context.Context, api.OrderFilter) ([]models.Order, error) {
	return []models.Order{{ID: "o1", OrderCode: "DH-001"}}, nil
}

func TestPollerFetchesImmediatelyAndOnTick(t *testing.T) {
	src := &fakeSource{}
	p := NewPoller(src, 10*time.Millisecond, nil)

	updates := make(chan Snapshot, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx, func(s Snapshot) { updates <- s })
		close(done)
	}()

	first := <-updates
	if first.Stats.TodayOrders != 1 || len(first.RecentOrders) != 1 {
		t.Fatalf("unexpected first snapshot: %+v", first)
	}

	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("expected a second snapshot from the ticker")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancellation")
	}
}

func TestPollerKeepsGoingAfterErrors(t *testing.T) {
	src := &fakeSource{}
	src.failStats.Store(true)
	p := NewPoller(src, 10*time.Millisecond, nil)

	updates := make(chan Snapshot, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx, func(s Snapshot) { updates <- s })

	// Let a few failing fetches pass, then recover.
	time.Sleep(50 * time.Millisecond)
	select {
	case <-updates:
		t.Fatal("no snapshot expected while fetches fail")
	default:
	}

	src.failStats.Store(false)
	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("expected polling to recover after errors")
	}
}
