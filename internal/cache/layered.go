package cache

import "time"

// LayeredCache combines a memory layer with a disk layer. Reads check
// memory first and promote disk hits.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a layered cache with the given TTLs.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get retrieves a value, checking memory before disk.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		// Promote to memory with the default TTL
		_ = c.memory.Set(key, val, 0)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes a value from both layers.
func (c *LayeredCache) Delete(key string) error {
	if err := c.memory.Delete(key); err != nil {
		return err
	}
	return c.disk.Delete(key)
}

// Clear empties both layers.
func (c *LayeredCache) Clear() error {
	if err := c.memory.Clear(); err != nil {
		return err
	}
	return c.disk.Clear()
}
