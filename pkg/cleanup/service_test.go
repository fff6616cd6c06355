package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/axiom-guard/boundary/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SweepAll_EvictsAcrossRegisteredCaches(t *testing.T) {
	graphs := NewCache[int]()
	scores := NewCache[string]()

	graphs.Set("inst-1", 1)
	scores.Set("user-1", "ok")

	graphs.mu.Lock()
	e := graphs.entries["inst-1"]
	e.lastAccess = time.Now().Add(-time.Hour)
	graphs.entries["inst-1"] = e
	graphs.mu.Unlock()

	svc := NewService(config.RetentionConfig{DerivedCacheTTL: time.Minute, CleanupInterval: time.Hour})
	Register(svc, "identity_graphs", graphs)
	Register(svc, "mirrorscore", scores)

	svc.sweepAll()

	assert.Equal(t, 0, graphs.Len())
	assert.Equal(t, 1, scores.Len())
}

func TestService_StartStop(t *testing.T) {
	svc := NewService(config.RetentionConfig{DerivedCacheTTL: time.Millisecond, CleanupInterval: 5 * time.Millisecond})
	c := NewCache[int]()
	c.Set("k", 1)
	Register(svc, "test_cache", c)

	svc.Start(context.Background())
	require.Eventually(t, func() bool {
		return c.Len() == 0
	}, time.Second, 10*time.Millisecond)

	svc.Stop()
}

func TestService_StartTwiceIsNoop(t *testing.T) {
	svc := NewService(config.RetentionConfig{DerivedCacheTTL: time.Minute, CleanupInterval: time.Hour})
	svc.Start(context.Background())
	firstCancel := svc.cancel
	svc.Start(context.Background())
	assert.NotNil(t, firstCancel)
	svc.Stop()
}
