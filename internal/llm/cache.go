package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedCompleter memoises successful completions by prompt hash.
// Errors are never cached.
type CachedCompleter struct {
	next  Completer
	cache *lru.Cache[string, string]
}

func NewCachedCompleter(next Completer, size int) (*CachedCompleter, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedCompleter{next: next, cache: cache}, nil
}

func (c *CachedCompleter) Name() string { return c.next.Name() + "+lru" }

func (c *CachedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	key := promptKey(prompt)
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}
	out, err := c.next.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, out)
	return out, nil
}

// Len reports the number of cached completions.
func (c *CachedCompleter) Len() int { return c.cache.Len() }

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
