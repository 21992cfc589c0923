package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	credstore "go.pilab.hu/credstore"
)

// MemoryTokenCache implements TokenCache with an in-process ttlcache.
type MemoryTokenCache struct {
	cache *ttlcache.Cache[string, *Entry]
}

// NewMemoryTokenCache creates an in-memory token cache whose entries live
// until their own expiry. The background cleanup goroutine runs until
// Close.
func NewMemoryTokenCache() *MemoryTokenCache {
	c := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, *Entry](),
	)
	go c.Start()

	return &MemoryTokenCache{cache: c}
}

func (m *MemoryTokenCache) Set(_ context.Context, token string, entry *Entry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	m.cache.Set(credstore.HashToken(token), entry, ttl)
	return nil
}

func (m *MemoryTokenCache) Get(_ context.Context, token string) (*Entry, bool) {
	item := m.cache.Get(credstore.HashToken(token))
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

func (m *MemoryTokenCache) Delete(_ context.Context, token string) error {
	m.cache.Delete(credstore.HashToken(token))
	return nil
}

func (m *MemoryTokenCache) DeleteExpired(_ context.Context) error {
	m.cache.DeleteExpired()
	return nil
}

func (m *MemoryTokenCache) Close() error {
	m.cache.Stop()
	return nil
}

var _ TokenCache = (*MemoryTokenCache)(nil)
