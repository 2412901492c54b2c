package external

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	"weatherlog.app/pkg/errors"
)

// MemoryCacheProvider is a process-local CacheProvider with per-key expiry.
// Expired entries are dropped lazily on read.
type MemoryCacheProvider struct {
	entries map[string]memoryCacheEntry
	mu      sync.RWMutex
	now     func() time.Time
}

type memoryCacheEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryCacheEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		entries: make(map[string]memoryCacheEntry),
		now:     time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := requireKey(key); err != nil {
		return nil, err
	}

	entry, ok := c.lookup(key)
	if !ok {
		return nil, errors.NewNotFoundError("cache miss")
	}

	return bytes.Clone(entry.value), nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryCacheEntry{
		value:     bytes.Clone(value),
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if err := requireKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if err := requireKey(key); err != nil {
		return false, err
	}

	_, ok := c.lookup(key)
	return ok, nil
}

// Clear drops every key under the service namespace, mirroring the Redis adapter
func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, cacheKeyNamespace) {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *MemoryCacheProvider) lookup(key string) (memoryCacheEntry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return memoryCacheEntry{}, false
	}
	if entry.expired(c.now()) {
		c.mu.Lock()
		if current, still := c.entries[key]; still && current.expired(c.now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return memoryCacheEntry{}, false
	}
	return entry, true
}
