package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache, clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      10 * time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(11 * time.Second)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "evict least recently used",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, uint64(1), c.Stats().Evictions)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      10 * time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(6 * time.Second)
				c.Set("a", []byte("2"))
				clock.Advance(6 * time.Second)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Delete("a")
				c.Delete("missing")
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "stats count hits and misses",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Get("a")
				c.Get("a")
				c.Get("b")
				assert.Equal(t, Stats{Hits: 2, Misses: 1}, c.Stats())
			},
		},
		{
			name:     "cleanup removes expired only",
			capacity: 3,
			ttl:      10 * time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(6 * time.Second)
				c.Set("b", []byte("2"))
				clock.Advance(6 * time.Second)

				c.cleanup()

				assert.Equal(t, 1, c.Size())
				_, ok := c.Get("b")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tt.capacity, tt.ttl, WithClock(clock.Now))
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_Start(t *testing.T) {
	c := NewLRUCache(2, 20*time.Millisecond, WithJanitorInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	c.Set("a", []byte("1"))
	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
