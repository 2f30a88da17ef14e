// Package sst provides read-only access to the external show-metadata
// source keyed by media id. Lookups are prompt context only: any failure
// degrades to "metadata unavailable" and never fails a job.
package sst

import (
	"sync"
	"time"
)

// cacheEntry holds a cached record with a timestamp for TTL expiration.
// A nil record is a cached miss; negative caching keeps repeated lookups
// for unknown media ids off the wire.
type cacheEntry struct {
	record    *Record
	fetchedAt time.Time
}

// Cache is a thread-safe in-memory record cache with TTL expiration.
// Expired entries are cleaned up lazily on Get, no background goroutine.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewCache creates a new cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached record if present and not expired.
func (c *Cache) Get(mediaID string) (*Record, bool) {
	c.mu.RLock()
	entry, ok := c.entries[mediaID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired. Re-check under write lock: a concurrent Set may have
		// replaced the entry with a fresh one.
		c.mu.Lock()
		if current, ok := c.entries[mediaID]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, mediaID)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.record, true
}

// Set stores a record (or a nil miss) with the current timestamp.
func (c *Cache) Set(mediaID string, record *Record) {
	c.mu.Lock()
	c.entries[mediaID] = &cacheEntry{
		record:    record,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
