package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/observability"
)

// Cache is a process-local domain.Cache used when no Redis address is
// configured. Values are stored as JSON so behavior matches the Redis
// adapter exactly.
type Cache struct {
	mu    sync.Mutex
	items map[string]cacheItem
}

type cacheItem struct {
	data    []byte
	expires time.Time
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]cacheItem)}
}

func (c *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	it, ok := c.items[key]
	if ok && !it.expires.IsZero() && time.Now().After(it.expires) {
		delete(c.items, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	if err := json.Unmarshal(it.data, dst); err != nil {
		return false, err
	}
	observability.ObserveCache("memory", "hit")
	return true, nil
}

func (c *Cache) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var exp time.Time
	if ttlSec > 0 {
		exp = time.Now().Add(time.Duration(ttlSec) * time.Second)
	}
	c.mu.Lock()
	c.items[key] = cacheItem{data: b, expires: exp}
	c.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (c *Cache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}
