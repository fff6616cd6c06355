// Package cleanup evicts stale entries from the in-memory derived-view
// caches (identity graphs, MirrorScore state, provider health) on a
// fixed interval. The event log itself is never touched here — it is
// retained indefinitely; this only bounds memory for views recomputed
// from it.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/axiom-guard/boundary/pkg/config"
)

// sweeper is satisfied by *Cache[T] for any T.
type sweeper interface {
	sweep(ttl time.Duration) int
}

// Service periodically sweeps registered derived-view caches, evicting
// entries idle longer than the configured TTL. All operations are
// idempotent and safe to run from multiple instances — each sweeps only
// its own process-local caches.
type Service struct {
	config   config.RetentionConfig
	sweepers map[string]sweeper

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service with no caches registered yet.
// Call Register for each cache that should be swept.
func NewService(cfg config.RetentionConfig) *Service {
	return &Service{
		config:   cfg,
		sweepers: make(map[string]sweeper),
	}
}

// Register adds a cache to the sweep set under name, used only for
// logging which cache reclaimed how many entries.
func Register[T any](s *Service, name string, cache *Cache[T]) {
	s.sweepers[name] = cache
}

// Start launches the background sweep loop. Safe to call once; repeat
// calls are no-ops.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("cleanup service started",
		"derived_cache_ttl", s.config.DerivedCacheTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweepAll()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepAll()
		}
	}
}

func (s *Service) sweepAll() {
	for name, c := range s.sweepers {
		if n := c.sweep(s.config.DerivedCacheTTL); n > 0 {
			slog.Info("cleanup: evicted stale cache entries", "cache", name, "count", n)
		}
	}
}
