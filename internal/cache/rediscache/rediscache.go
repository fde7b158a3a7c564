package rediscache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Key builders for the redis namespaces this service uses. Callers never
// assemble key strings themselves.

// TrackingCurrentKey holds the cached tracking record for one package
// number (uppercased by the tracking service before it gets here).
func TrackingCurrentKey(number string) string {
	return "tracking:" + number + ":current"
}

// LabelRenderKey is the per-client rate-limit counter for PDF rendering.
func LabelRenderKey(client string) string {
	return "label:" + client
}

// RedisCache backs cache.BytesCache with a single redis instance. It
// caches per-number tracking lookups for the client portal.
type RedisCache struct {
	c *redis.Client
}

func New(addr string) *RedisCache {
	return &RedisCache{
		c: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}
	return val, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.c.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.c.Close()
}
