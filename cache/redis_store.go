// Package cache keeps solved paths in Redis so repeated mazes skip the search.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key written by RedisStore.
const KeyPrefix = "mazedfs:solution:"

// ErrNilClient is returned by NewRedisStore when no client is given.
var ErrNilClient = errors.New("cache: redis client is nil")

// RedisStore stores solution text under KeyPrefix+key with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore initializes a RedisStore with the provided client and TTL.
// A non-positive ttlSeconds stores entries without expiry.
func NewRedisStore(client *redis.Client, ttlSeconds int) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	ttl := time.Duration(0)
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Key returns the full Redis key for a maze fingerprint.
func Key(fingerprint string) string {
	return KeyPrefix + fingerprint
}

// Get returns the stored value for key and whether it exists.
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := rs.client.Get(ctx, Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Put stores value under key, refreshing its TTL.
func (rs *RedisStore) Put(ctx context.Context, key, value string) error {
	return rs.client.Set(ctx, Key(key), value, rs.ttl).Err()
}

// Ping checks the connection.
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// TTL returns the expiry applied to new entries; zero means none.
func (rs *RedisStore) TTL() time.Duration {
	return rs.ttl
}
