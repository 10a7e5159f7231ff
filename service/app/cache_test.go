package app

import (
	"context"
	"testing"

	redis "github.com/redis/go-redis/v9"
)

func TestRedisRenderCacheGetSet(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("skip: redis not available: %v", err)
	}
	defer rdb.FlushAll(context.Background())

	cache := NewRedisRenderCache("127.0.0.1:6379", 0)
	ctx := context.Background()

	doc := []byte(`{"kind":"text","s":"hello"}`)

	if _, ok := cache.Get(ctx, 80, doc); ok {
		t.Fatal("expected a cache miss before any Set")
	}

	cache.Set(ctx, 80, doc, "hello")

	out, ok := cache.Get(ctx, 80, doc)
	if !ok {
		t.Fatal("expected a cache hit after Set")
	}
	if out != "hello" {
		t.Fatalf("expected %q, got %q", "hello", out)
	}

	if _, ok := cache.Get(ctx, 40, doc); ok {
		t.Fatal("expected a different width to miss the cache")
	}
}

func TestNoopRenderCache(t *testing.T) {
	cache := NewRedisRenderCache("", 0)
	ctx := context.Background()
	doc := []byte(`{"kind":"text","s":"hello"}`)

	cache.Set(ctx, 80, doc, "hello")
	if _, ok := cache.Get(ctx, 80, doc); ok {
		t.Fatal("a disabled cache must never report a hit")
	}
}
