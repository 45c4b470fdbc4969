package textgen

import (
	"context"
	"strconv"
	"sync"
)

// cachingProvider memoizes phrases per champion so repeated renders of
// the same board do not re-call the backend.
type cachingProvider struct {
	inner Provider
	mu    sync.Mutex
	cache map[string]string
}

// NewCachingProvider wraps a provider with an in-memory phrase cache.
func NewCachingProvider(inner Provider) Provider {
	return &cachingProvider{inner: inner, cache: make(map[string]string)}
}

func (c *cachingProvider) Generate(ctx context.Context, req Request) (string, error) {
	key := cacheKey(req)

	c.mu.Lock()
	phrase, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return phrase, nil
	}

	phrase, err := c.inner.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.cache[key] = phrase
	c.mu.Unlock()
	return phrase, nil
}

func cacheKey(req Request) string {
	return req.Category + "|" + req.Player + "|" + strconv.Itoa(req.Value)
}
