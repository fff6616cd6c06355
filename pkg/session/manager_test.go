package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WithLock_SerializesSameKey(t *testing.T) {
	m := NewManager()

	var active int32
	var maxActive int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithLock("inst-1", func() error {
				n := atomic.AddInt32(&active, 1)
				for {
					cur := atomic.LoadInt32(&maxActive)
					if n <= cur || atomic.CompareAndSwapInt32(&maxActive, cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&active, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive, "only one goroutine should hold the lock for a given key at a time")
}

func TestManager_WithLock_DifferentKeysRunConcurrently(t *testing.T) {
	m := NewManager()

	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make(chan string, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		_ = m.WithLock("inst-a", func() error {
			time.Sleep(20 * time.Millisecond)
			results <- "a"
			return nil
		})
	}()
	go func() {
		defer wg.Done()
		<-start
		_ = m.WithLock("inst-b", func() error {
			results <- "b"
			return nil
		})
	}()

	close(start)
	wg.Wait()
	close(results)

	first := <-results
	assert.Equal(t, "b", first, "a lock on a different key should not wait behind an unrelated key's lock")
}

func TestManager_EntriesReclaimedAfterUnlock(t *testing.T) {
	m := NewManager()

	unlock := m.Lock("user-1")
	assert.Equal(t, 1, m.Len())
	unlock()
	assert.Equal(t, 0, m.Len(), "entry should be removed once its refcount drops to zero")
}

func TestManager_LockContext_CanceledBeforeAcquire(t *testing.T) {
	m := NewManager()

	holder := m.Lock("inst-x")
	defer holder()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.LockContext(ctx, "inst-x")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestManager_LockContext_Succeeds(t *testing.T) {
	m := NewManager()

	unlock, err := m.LockContext(context.Background(), "inst-y")
	require.NoError(t, err)
	unlock()
	assert.Equal(t, 0, m.Len())
}
