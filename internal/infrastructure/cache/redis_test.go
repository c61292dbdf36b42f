package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_Success(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	// non-zero DB to verify it's passed through
	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.Set(ctx, "k", "v", 0).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	v, err := c.Get(ctx, "k").Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != "v" {
		t.Fatalf("GET value = %q, want %q", v, "v")
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCache_GetSet(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	rdb, err := OpenRedis(s.Addr(), 0)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewCache(rdb)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatalf("Get on a missing key must report a miss")
	}

	if err := c.Set(ctx, "risk:abc:100:1", `{"composite":74}`, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := c.Get(ctx, "risk:abc:100:1")
	if !ok || v != `{"composite":74}` {
		t.Fatalf("Get = (%q, %v), want stored value", v, ok)
	}

	// entries expire with their ttl
	s.FastForward(2 * time.Minute)
	if _, ok := c.Get(ctx, "risk:abc:100:1"); ok {
		t.Fatalf("entry should have expired")
	}
}
