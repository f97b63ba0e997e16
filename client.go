// Package lexmatch provides an embeddable client for lexical overlap
// analysis. It wires the same annotator chain the API server uses, without
// the HTTP layer: a builtin English annotator (or a custom one), an
// optional Redis-backed annotation cache, and the analysis service.
package lexmatch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lexmatch-io/lexmatch/internal/annotator/english"
	"github.com/lexmatch-io/lexmatch/internal/db"
	dbRedis "github.com/lexmatch-io/lexmatch/internal/db/redis"
	"github.com/lexmatch-io/lexmatch/internal/domain"
	"github.com/lexmatch-io/lexmatch/internal/repository/anncache"
	analysisuc "github.com/lexmatch-io/lexmatch/internal/usecase/analysis"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the lexmatch SDK entry point.
type Client struct {
	store     db.Store
	annotator domain.Annotator
	analysis  *analysisuc.Service
}

// New creates a lexmatch Client. Without options it uses the builtin
// English annotator and no cache.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		provider: "builtin",
		cacheTTL: 24 * time.Hour,
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	var base domain.Annotator = english.New()
	if cfg.annotator != nil {
		base = &annotatorAdapter{inner: cfg.annotator}
	}

	var store db.Store
	if len(cfg.cacheAddrs) > 0 {
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.cacheAddrs,
			Password: cfg.cachePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("lexmatch: create cache store: %w", err)
		}
		if err := s.WaitForReady(context.Background(), defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("lexmatch: cache not ready: %w", err)
		}
		store = s
	}

	annotator := base
	if store != nil {
		annotator = anncache.New(base, store, cfg.provider, cfg.cacheTTL, nil, cfg.logger)
	}

	svc := analysisuc.New(annotator)
	if cfg.maxInputBytes > 0 {
		svc = svc.WithMaxInputBytes(cfg.maxInputBytes)
	}

	return &Client{
		store:     store,
		annotator: annotator,
		analysis:  svc,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Analyze computes every overlap metric for the reference/target pair.
func (c *Client) Analyze(ctx context.Context, reference, target string) (Report, error) {
	rep, err := c.analysis.Analyze(ctx, reference, target)
	if err != nil {
		return Report{}, fmt.Errorf("analyze: %w", err)
	}
	return reportFromInternal(rep), nil
}

// Annotate returns the annotated document for a single text.
func (c *Client) Annotate(ctx context.Context, text string) (Document, error) {
	doc, err := c.annotator.Annotate(ctx, text)
	if err != nil {
		return Document{}, fmt.Errorf("annotate: %w", err)
	}
	return documentFromInternal(doc), nil
}

// annotatorAdapter wraps a public Annotator to satisfy internal domain.Annotator.
type annotatorAdapter struct {
	inner Annotator
}

func (a *annotatorAdapter) Annotate(ctx context.Context, text string) (domain.AnnotatedDocument, error) {
	doc, err := a.inner.Annotate(ctx, text)
	if err != nil {
		return domain.AnnotatedDocument{}, fmt.Errorf("annotate: %w", err)
	}
	return doc.toInternal(), nil
}
