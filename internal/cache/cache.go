// Package cache keeps recent model replies in memory so identical submissions
// do not cost another API call.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is an in-memory byte cache with per-entry expiry.
type Store struct {
	cache *gocache.Cache
}

// New creates a store. A non-positive ttl disables expiry.
func New(ttl, cleanupInterval time.Duration) *Store {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Store{cache: gocache.New(ttl, cleanupInterval)}
}

// Get returns the cached value for key.
func (s *Store) Get(key string) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	if v, ok := s.cache.Get(key); ok {
		return v.([]byte), true
	}
	return nil, false
}

// Set stores value under the default ttl.
func (s *Store) Set(key string, value []byte) {
	if s == nil {
		return
	}
	s.cache.SetDefault(key, value)
}

// Len is the number of live entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.cache.ItemCount()
}

// Flush drops every entry.
func (s *Store) Flush() {
	if s == nil {
		return
	}
	s.cache.Flush()
}

// Key derives a stable cache key from a namespace and the submitted text.
func Key(namespace, text string) string {
	sum := sha256.Sum256([]byte(namespace + "\x00" + text))
	return "logicheck:v1:" + namespace + ":" + hex.EncodeToString(sum[:])
}
