package anncache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/lexmatch-io/lexmatch/internal/db"
	"github.com/lexmatch-io/lexmatch/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "ann_cache:"

// store is the consumer interface for the annotation cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedAnnotator caches annotated documents in a key-value store.
// Documents are stored as JSON under a key derived from the provider name
// and a hash of the input text, so switching providers never serves stale
// annotations from another provider.
type CachedAnnotator struct {
	inner      domain.Annotator
	store      store
	provider   string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.Annotator,
	s store,
	provider string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedAnnotator {
	return &CachedAnnotator{
		inner:      inner,
		store:      s,
		provider:   provider,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Annotate returns a cached document or calls the inner annotator.
func (c *CachedAnnotator) Annotate(ctx context.Context, text string) (domain.AnnotatedDocument, error) {
	key := c.cacheKey(text)

	if doc, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return doc, nil
	}

	c.incCache("miss")

	doc, err := c.inner.Annotate(ctx, text)
	if err != nil {
		return domain.AnnotatedDocument{}, fmt.Errorf("annotate text: %w", err)
	}

	c.putToCache(ctx, key, doc)
	return doc, nil
}

// HealthCheck delegates to the inner annotator when it supports health checks.
func (c *CachedAnnotator) HealthCheck(ctx context.Context) error {
	if hc, ok := c.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

func (c *CachedAnnotator) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedAnnotator) cacheKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + c.provider + ":" + hex.EncodeToString(h[:])
}

func (c *CachedAnnotator) getFromCache(ctx context.Context, key string) (domain.AnnotatedDocument, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached annotation", zap.String("key", key), zap.Error(err))
		}
		return domain.AnnotatedDocument{}, false
	}
	if len(data) == 0 {
		return domain.AnnotatedDocument{}, false
	}

	var doc domain.AnnotatedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		c.logger.Warn("Failed to parse cached annotation", zap.String("key", key), zap.Error(err))
		return domain.AnnotatedDocument{}, false
	}

	return doc, true
}

func (c *CachedAnnotator) putToCache(ctx context.Context, key string, doc domain.AnnotatedDocument) {
	data, err := json.Marshal(doc)
	if err != nil {
		c.logger.Warn("Failed to encode annotation for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache annotation", zap.String("key", key), zap.Error(err))
	}
}
