package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mini := miniredis.RunT(t)
	c, err := NewCache(mini.Addr(), true)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	t.Cleanup(func() {
		c.Close()
	})
	return c, mini
}

func TestDisabledCache(t *testing.T) {
	c, err := NewCache("", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Enabled() {
		t.Fatalf("expected disabled cache")
	}
	if err := c.Set(context.Background(), "k", "v", time.Minute); err != nil {
		t.Fatalf("set on disabled cache should be a no-op: %v", err)
	}
	var dest string
	if err := c.Get(context.Background(), "k", &dest); !errors.Is(err, ErrCacheDisabled) {
		t.Fatalf("expected ErrCacheDisabled, got %v", err)
	}
}

func TestKitRoundTrip(t *testing.T) {
	c, mini := newTestCache(t)
	ctx := context.Background()

	key := KitKey("Sophia", "Default", "")
	if key != "kit:sophia:default:_" {
		t.Fatalf("unexpected key %q", key)
	}

	if _, err := c.GetCachedKit(ctx, key); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected miss, got %v", err)
	}

	kit := RenderedKit{TemplateID: "default", HTML: `<div class="kit">hi</div>`, RenderedAt: time.Unix(1700000000, 0).UTC()}
	if err := c.CacheKit(ctx, key, kit, time.Minute); err != nil {
		t.Fatalf("cache kit: %v", err)
	}

	got, err := c.GetCachedKit(ctx, key)
	if err != nil {
		t.Fatalf("get kit: %v", err)
	}
	if got.HTML != kit.HTML || got.TemplateID != kit.TemplateID || !got.RenderedAt.Equal(kit.RenderedAt) {
		t.Fatalf("unexpected kit %+v", got)
	}

	mini.FastForward(2 * time.Minute)
	if _, err := c.GetCachedKit(ctx, key); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected entry to expire, got %v", err)
	}
}

func TestInvalidateKitOnlyTouchesOneCreator(t *testing.T) {
	c, mini := newTestCache(t)
	ctx := context.Background()

	for _, key := range []string{
		KitKey("sophia", "default", "a"),
		KitKey("sophia", "luxury", "b"),
		KitKey("luna", "default", "a"),
		ThumbnailKey("default"),
	} {
		if err := c.Set(ctx, key, RenderedKit{HTML: "x"}, time.Hour); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	if err := c.InvalidateKit(ctx, "Sophia"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if mini.Exists(KitKey("sophia", "default", "a")) || mini.Exists(KitKey("sophia", "luxury", "b")) {
		t.Fatalf("sophia entries should be gone")
	}
	if !mini.Exists(KitKey("luna", "default", "a")) {
		t.Fatalf("other creators should be untouched")
	}

	if err := c.InvalidateLibrary(ctx); err != nil {
		t.Fatalf("invalidate library: %v", err)
	}
	if mini.Exists(ThumbnailKey("default")) {
		t.Fatalf("thumbnail should be gone")
	}
}
