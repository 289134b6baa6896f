package registry

import (
	"context"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const lookupKeyPrefix = "cnpj:lookup:"

// Lookuper is the lookup capability the cache wraps and the orchestrators
// depend on.
type Lookuper interface {
	Lookup(ctx context.Context, cnpj string) Result
}

// CachedLookuper is a read-through Redis cache in front of a registry client.
// Only valid results are cached; a NETWORK outcome is never stored. Cache
// failures degrade to a direct lookup, never to a request failure.
type CachedLookuper struct {
	inner  Lookuper
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedLookuper(inner Lookuper, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedLookuper {
	return &CachedLookuper{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedLookuper) Lookup(ctx context.Context, cnpj string) Result {
	key := lookupKeyPrefix + stripNonDigits(cnpj)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var cached Result
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached
		}
		// Unreadable entry, fall through and refresh it.
	} else if err != redis.Nil && c.logger != nil {
		c.logger.WarnContext(ctx, "registry cache read failed", "error", err)
	}

	result := c.inner.Lookup(ctx, cnpj)
	if !result.Valid {
		return result
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil && c.logger != nil {
			c.logger.WarnContext(ctx, "registry cache write failed", "error", err)
		}
	}
	return result
}
