package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Cache is a time-expiring read-through cache over the content document.
// The cached value and its freshness timestamp are guarded together by one
// mutex, so overlapping reloads can never leave a torn half-written state.
type Cache struct {
	mu       sync.Mutex
	doc      *Document
	loadedAt time.Time

	ttl  time.Duration
	load func() (*Document, error)
	now  func() time.Time
}

func NewCache(path string, ttl time.Duration) *Cache {
	return &Cache{
		ttl:  ttl,
		load: func() (*Document, error) { return loadFile(path) },
		now:  time.Now,
	}
}

// Get returns the cached document, reloading it on first use or after the
// TTL has elapsed. A reload failure is returned even when a stale value
// exists: the templates downstream assume a fully populated document, so
// serving stale-and-wrong content here would be worse than failing.
func (c *Cache) Get() (*Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.doc != nil && now.Sub(c.loadedAt) < c.ttl {
		return c.doc, nil
	}

	doc, err := c.load()
	if err != nil {
		return nil, fmt.Errorf("load content document: %w", err)
	}

	c.doc = doc
	c.loadedAt = now
	return doc, nil
}

// Invalidate clears the cached value so the next Get forces a reload.
// Intended for content-authoring workflows, not request serving.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = nil
	c.loadedAt = time.Time{}
}

func loadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
