package itempool

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// HelperGroup runs the non-real-time-thread refill and drain loops a
// schedule's item pools need: topology construction and the real-time
// path itself never allocate or block, so something else must keep
// sources full and sinks emptied. Built on golang.org/x/sync/errgroup
// rather than bare goroutines so the helpers share one cancellation
// signal and a joinable error.
type HelperGroup struct {
	g      *errgroup.Group
	cancel context.CancelFunc
}

// NewHelperGroup creates a HelperGroup bound to ctx; cancel ctx (or call
// Stop) to end every loop it runs. The returned context should be passed
// to each RunPeriodic call so loops observe the cancellation.
func NewHelperGroup(ctx context.Context) (*HelperGroup, context.Context) {
	gctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(gctx)
	return &HelperGroup{g: g, cancel: cancel}, gctx
}

// RunPeriodic starts a loop that calls fn every interval until the group
// is stopped. Callers wire a pool's Fill or a sink's WithEach/DisposeAll
// as fn; a closure is used instead of a typed Creator[T]/Dispose[T]
// parameter because Go generics have no variance, so a single HelperGroup
// must be able to drive pools of unrelated element types.
func (h *HelperGroup) RunPeriodic(ctx context.Context, interval time.Duration, fn func()) {
	h.g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				fn()
			}
		}
	})
}

// Stop cancels every running loop.
func (h *HelperGroup) Stop() { h.cancel() }

// Wait blocks until every loop started with RunPeriodic has
// returned (which happens once Stop is called or the bound context is
// cancelled).
func (h *HelperGroup) Wait() error { return h.g.Wait() }
