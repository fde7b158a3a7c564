package cache

import (
	"context"
	"time"
)

// BytesCache is a best-effort byte cache. A nil implementation is valid
// everywhere it is accepted; callers treat errors as misses.
type BytesCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
