package cleanup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache[int]()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("inst-1", 42)
	v, ok := c.Get("inst-1")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestCache_Delete(t *testing.T) {
	c := NewCache[string]()
	c.Set("k", "v")
	c.Delete("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_Sweep_EvictsStaleEntries(t *testing.T) {
	c := NewCache[int]()
	c.Set("stale", 1)
	c.Set("fresh", 2)

	// Backdate "stale" past the TTL without touching "fresh".
	c.mu.Lock()
	e := c.entries["stale"]
	e.lastAccess = time.Now().Add(-time.Hour)
	c.entries["stale"] = e
	c.mu.Unlock()

	removed := c.sweep(time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("fresh")
	assert.True(t, ok)
}

func TestCache_Sweep_NonPositiveTTLDisablesEviction(t *testing.T) {
	c := NewCache[int]()
	c.Set("k", 1)
	removed := c.sweep(0)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Get_RefreshesLastAccess(t *testing.T) {
	c := NewCache[int]()
	c.Set("k", 1)

	c.mu.Lock()
	e := c.entries["k"]
	e.lastAccess = time.Now().Add(-time.Hour)
	c.entries["k"] = e
	c.mu.Unlock()

	_, ok := c.Get("k")
	assert.True(t, ok)

	removed := c.sweep(time.Minute)
	assert.Equal(t, 0, removed, "a Get should refresh the entry past the sweep cutoff")
}
