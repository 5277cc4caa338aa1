package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUCache is the in-process CacheRepository used when no Redis address is
// configured. Entries expire after ttl and the least recently used entry is
// evicted once size is reached.
type LRUCache struct {
	lru *expirable.LRU[string, string]
}

func NewLRUCache(size int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *LRUCache) Get(_ context.Context, key string) (string, bool) {
	return c.lru.Get(key)
}

func (c *LRUCache) Set(_ context.Context, key string, value string) error {
	c.lru.Add(key, value)
	return nil
}

// Len returns the number of live entries.
func (c *LRUCache) Len() int {
	return c.lru.Len()
}
