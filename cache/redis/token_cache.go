// Package redis provides a Redis-backed TokenCache for deployments where
// multiple server instances share one redemption cache.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	credstore "go.pilab.hu/credstore"
	"go.pilab.hu/credstore/cache"
)

// TokenCache implements cache.TokenCache on a Redis client. Entries expire
// via Redis key TTLs, so DeleteExpired is a no-op.
type TokenCache struct {
	client *redis.Client
	prefix string
}

func NewTokenCache(client *redis.Client, prefix string) *TokenCache {
	return &TokenCache{client: client, prefix: prefix}
}

func (r *TokenCache) key(token string) string {
	return fmt.Sprintf("%s:token:%s", r.prefix, credstore.HashToken(token))
}

func (r *TokenCache) Set(ctx context.Context, token string, entry *cache.Entry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}
	if err := r.client.Set(ctx, r.key(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("setting token in redis: %w", err)
	}
	return nil
}

func (r *TokenCache) Get(ctx context.Context, token string) (*cache.Entry, bool) {
	raw, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Msg("redis token cache read failed")
		}
		return nil, false
	}

	var entry cache.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Warn().Err(err).Msg("corrupt redis token cache entry")
		return nil, false
	}
	return &entry, true
}

func (r *TokenCache) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}

// DeleteExpired is a no-op: Redis evicts entries via per-key TTLs.
func (r *TokenCache) DeleteExpired(context.Context) error {
	return nil
}

func (r *TokenCache) Close() error {
	return r.client.Close()
}

var _ cache.TokenCache = (*TokenCache)(nil)
