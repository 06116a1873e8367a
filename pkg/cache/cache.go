package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	kitKeyPrefix       = "kit:"
	thumbnailKeyPrefix = "thumbnail:"
	previewKeyPrefix   = "preview:"
)

var (
	ErrCacheMiss     = errors.New("key not found")
	ErrCacheDisabled = errors.New("cache disabled")
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

// Enabled reports whether the cache is backed by Redis.
func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

// operationContext creates a context with timeout for Redis operations
func (c *Cache) operationContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, defaultOperationTimeout)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if !c.Enabled() {
		return ErrCacheDisabled
	}

	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	} else if err != nil {
		return err
	}
	return json.Unmarshal(val, dest)
}

func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// RenderedKit is a cached template render.
type RenderedKit struct {
	TemplateID string    `json:"template_id"`
	HTML       string    `json:"html"`
	RenderedAt time.Time `json:"rendered_at"`
}

// KitKey identifies a public kit render. The variant folds in preset and
// visibility so different editor states never share an entry.
func KitKey(username, templateID, variant string) string {
	return kitKeyPrefix + normaliseKeyPart(username) + ":" + normaliseKeyPart(templateID) + ":" + normaliseKeyPart(variant)
}

func ThumbnailKey(templateID string) string {
	return thumbnailKeyPrefix + normaliseKeyPart(templateID)
}

func PreviewKey(templateID string) string {
	return previewKeyPrefix + normaliseKeyPart(templateID)
}

func normaliseKeyPart(part string) string {
	part = strings.ToLower(strings.TrimSpace(part))
	if part == "" {
		return "_"
	}
	return part
}

func (c *Cache) CacheKit(ctx context.Context, key string, kit RenderedKit, ttl time.Duration) error {
	return c.Set(ctx, key, kit, ttl)
}

func (c *Cache) GetCachedKit(ctx context.Context, key string) (RenderedKit, error) {
	var kit RenderedKit
	err := c.Get(ctx, key, &kit)
	return kit, err
}

// InvalidateKit drops every cached render of a creator's kit.
func (c *Cache) InvalidateKit(ctx context.Context, username string) error {
	return c.DeletePattern(ctx, kitKeyPrefix+normaliseKeyPart(username)+":*")
}

// InvalidateKits drops every cached kit render.
func (c *Cache) InvalidateKits(ctx context.Context) error {
	return c.DeletePattern(ctx, kitKeyPrefix+"*")
}

// InvalidateLibrary drops cached thumbnails and previews.
func (c *Cache) InvalidateLibrary(ctx context.Context) error {
	if err := c.DeletePattern(ctx, thumbnailKeyPrefix+"*"); err != nil {
		return err
	}
	return c.DeletePattern(ctx, previewKeyPrefix+"*")
}
