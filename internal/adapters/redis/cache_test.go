package redisad

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	type stats struct {
		PageViews int `json:"page_views"`
		Messages  int `json:"messages"`
	}

	var out stats
	ok, err := c.Get(ctx, "admin:stats", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Set(ctx, "admin:stats", stats{PageViews: 123, Messages: 2}, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	ok, err = c.Get(ctx, "admin:stats", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || out.PageViews != 123 || out.Messages != 2 {
		t.Fatalf("got ok=%v %+v", ok, out)
	}

	if err := c.Del(ctx, "admin:stats"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, _ = c.Get(ctx, "admin:stats", &out)
	if ok {
		t.Fatal("expected miss after Del")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(6 * time.Second)

	var out string
	ok, err := c.Get(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected expiry after TTL")
	}
}
