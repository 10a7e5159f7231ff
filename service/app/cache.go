package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RenderCache memoizes rendered output by a content hash of (width,
// document). pretty.Print is a pure function, so this is a correctness-
// neutral optimization: a disabled or empty cache behaves identically
// to a cache miss.
type RenderCache interface {
	Get(ctx context.Context, width uint, document []byte) (string, bool)
	Set(ctx context.Context, width uint, document []byte, output string)
}

type redisRenderCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRenderCache(addr string, ttl time.Duration) RenderCache {
	if addr == "" {
		return noopRenderCache{}
	}
	return &redisRenderCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (c *redisRenderCache) Get(ctx context.Context, width uint, document []byte) (string, bool) {
	out, err := c.rdb.Get(ctx, cacheKey(width, document)).Result()
	if err != nil {
		return "", false
	}
	return out, true
}

func (c *redisRenderCache) Set(ctx context.Context, width uint, document []byte, output string) {
	c.rdb.Set(ctx, cacheKey(width, document), output, c.ttl)
}

func cacheKey(width uint, document []byte) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatUint(uint64(width), 10)))
	h.Write([]byte{0})
	h.Write(document)
	return "render:" + hex.EncodeToString(h.Sum(nil))
}

// noopRenderCache is used when no cache backend is configured.
type noopRenderCache struct{}

func (noopRenderCache) Get(ctx context.Context, width uint, document []byte) (string, bool) { return "", false }
func (noopRenderCache) Set(ctx context.Context, width uint, document []byte, output string) {}
