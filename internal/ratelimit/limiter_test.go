package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	now := start
	l := New()
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiter_FixedWindow(t *testing.T) {
	cfg := Config{MaxRequests: 5, Window: time.Minute}
	start := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	l, clock := newTestLimiter(start)

	t.Run("allows all requests within the budget", func(t *testing.T) {
		for i := 1; i <= cfg.MaxRequests; i++ {
			res := l.Check("1.2.3.4", cfg)
			require.True(t, res.Allowed, "request %d should be allowed", i)
			assert.Equal(t, cfg.MaxRequests-i, res.Remaining)
			assert.Equal(t, start.Add(time.Minute), res.ResetTime)
		}
	})

	t.Run("denies the request past the budget", func(t *testing.T) {
		res := l.Check("1.2.3.4", cfg)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
		// ResetTime is unchanged so callers can compute retry-after
		assert.Equal(t, start.Add(time.Minute), res.ResetTime)
	})

	t.Run("starts a fresh window after the reset time", func(t *testing.T) {
		*clock = start.Add(time.Minute + time.Second)

		res := l.Check("1.2.3.4", cfg)
		require.True(t, res.Allowed)
		assert.Equal(t, cfg.MaxRequests-1, res.Remaining)
		assert.Equal(t, clock.Add(time.Minute), res.ResetTime)
	})
}

func TestLimiter_WindowBoundaryBurst(t *testing.T) {
	// Fixed window, not sliding: a client may spend a full budget just
	// before the boundary and another full budget just after it. This is
	// the accepted trade-off and must hold.
	cfg := Config{MaxRequests: 3, Window: time.Minute}
	start := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	l, clock := newTestLimiter(start)

	*clock = start.Add(59 * time.Second)
	allowed := 0
	for i := 0; i < cfg.MaxRequests; i++ {
		if l.Check("burst", cfg).Allowed {
			allowed++
		}
	}

	*clock = start.Add(61 * time.Second)
	for i := 0; i < cfg.MaxRequests; i++ {
		if l.Check("burst", cfg).Allowed {
			allowed++
		}
	}

	assert.Equal(t, 2*cfg.MaxRequests, allowed)
}

func TestLimiter_IdentifiersAreIndependent(t *testing.T) {
	cfg := Config{MaxRequests: 1, Window: time.Minute}
	l, _ := newTestLimiter(time.Now())

	assert.True(t, l.Check("a", cfg).Allowed)
	assert.False(t, l.Check("a", cfg).Allowed)
	assert.True(t, l.Check("b", cfg).Allowed)
}

func TestLimiter_Sweep(t *testing.T) {
	cfg := Config{MaxRequests: 5, Window: time.Minute}
	start := time.Now()
	l, clock := newTestLimiter(start)

	l.Check("expired", cfg)
	*clock = start.Add(30 * time.Second)
	l.Check("active", cfg)
	require.Equal(t, 2, l.Len())

	*clock = start.Add(70 * time.Second)
	l.Sweep()

	assert.Equal(t, 1, l.Len())
	// the surviving entry is still counted against its window
	res := l.Check("active", cfg)
	assert.Equal(t, cfg.MaxRequests-2, res.Remaining)
}

func TestLimiter_ConcurrentChecks(t *testing.T) {
	// (count, resetTime) must behave as one atomic unit: under concurrent
	// callers exactly MaxRequests may pass in a single window.
	cfg := Config{MaxRequests: 50, Window: time.Minute}
	l := New()

	const callers = 200
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Check("shared", cfg).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, cfg.MaxRequests, allowed)
}

func TestLimiter_SweeperLifecycle(t *testing.T) {
	l := New()
	require.NoError(t, l.StartSweeper(5*time.Minute))
	l.StopSweeper()
	// stopping twice is safe
	l.StopSweeper()
}

func TestLimiter_ManyIdentifiers(t *testing.T) {
	cfg := Config{MaxRequests: 2, Window: time.Minute}
	start := time.Now()
	l, clock := newTestLimiter(start)

	for i := 0; i < 100; i++ {
		l.Check(fmt.Sprintf("client-%d", i), cfg)
	}
	require.Equal(t, 100, l.Len())

	*clock = start.Add(2 * time.Minute)
	l.Sweep()
	assert.Equal(t, 0, l.Len())
}
