package cache

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultJanitorInterval = 2 * time.Minute

type entry struct {
	key        string
	value      []byte
	expiration time.Time
}

// Stats счётчики обращений с момента создания кэша.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

type Option func(c *LRUCache)

func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) {
		c.janitorInterval = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) {
		c.now = now
	}
}

// LRUCache хранит байтовые значения с общим TTL. При переполнении
// вытесняется давно не использованный ключ.
type LRUCache struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[string]*list.Element
	ttl      time.Duration

	janitorInterval time.Duration
	now             func() time.Time

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		capacity:        capacity,
		ll:              list.New(),
		cache:           make(map[string]*list.Element),
		ttl:             ttl,
		janitorInterval: defaultJanitorInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.cache[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}

	ent := ele.Value.(*entry)
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		c.misses.Add(1)
		return nil, false
	}

	c.ll.MoveToFront(ele)
	c.hits.Add(1)
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)
	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiration = expiration
		return
	}

	ele := c.ll.PushFront(&entry{key: key, value: value, expiration: expiration})
	c.cache[key] = ele

	if c.ll.Len() > c.capacity {
		if oldest := c.ll.Back(); oldest != nil {
			c.removeElement(oldest)
			c.evictions.Add(1)
		}
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.cache, e.Value.(*entry).key)
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRUCache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Start удаляет просроченные записи раз в janitorInterval до отмены ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	ticker := time.NewTicker(c.janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
