package providers

import (
	"context"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/cache"
)

// cachedAnalyzer wraps an Analyzer with the response cache. Cache keys cover
// provider, model, and both prompts, so a repeat analysis of an unchanged
// document skips the API call entirely.
type cachedAnalyzer struct {
	inner Analyzer
	cache *cache.Cache
	model string
}

// WithCache decorates an Analyzer with response caching. A nil or disabled
// cache returns the analyzer unchanged.
func WithCache(inner Analyzer, c *cache.Cache, model string) Analyzer {
	if c == nil || !c.Enabled() {
		return inner
	}
	return &cachedAnalyzer{inner: inner, cache: c, model: model}
}

func (a *cachedAnalyzer) Analyze(ctx context.Context, req Request) (Response, error) {
	key := cache.BuildCacheKey(a.inner.Name(), a.model, cache.HashKey(req.SystemPrompt), req.UserPrompt)
	if content, ok := a.cache.Get(key); ok {
		return Response{Content: content}, nil
	}
	resp, err := a.inner.Analyze(ctx, req)
	if err == nil {
		_ = a.cache.Put(key, resp.Content)
	}
	return resp, err
}

func (a *cachedAnalyzer) Name() string {
	return a.inner.Name()
}
