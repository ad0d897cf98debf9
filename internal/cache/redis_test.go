package cache

import (
	"context"
	"testing"
	"time"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	UseClient(nil, "")
	ctx := context.Background()

	if Enabled() {
		t.Fatalf("cache should be disabled without client")
	}
	if err := SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatalf("set on disabled cache should be noop, got %v", err)
	}
	var dest map[string]int
	found, err := GetJSON(ctx, "k", &dest)
	if err != nil || found {
		t.Fatalf("get on disabled cache want miss got found=%v err=%v", found, err)
	}
	if err := Ping(ctx); err != nil {
		t.Fatalf("ping on disabled cache should be nil, got %v", err)
	}
	if n, err := DelByPrefix(ctx, "stats"); err != nil || n != 0 {
		t.Fatalf("del by prefix on disabled cache want 0 got %d err=%v", n, err)
	}
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	UseClient(nil, "shop")
	if got := BuildKey("diamond_stats:abc"); got != "shop:diamond_stats:abc" {
		t.Fatalf("key want shop:diamond_stats:abc got %s", got)
	}
	if got := BuildKey("  "); got != "shop" {
		t.Fatalf("blank key want prefix got %s", got)
	}
	UseClient(nil, "")
	if got := BuildKey("x"); got != "luxe:x" {
		t.Fatalf("default prefix want luxe:x got %s", got)
	}
}
