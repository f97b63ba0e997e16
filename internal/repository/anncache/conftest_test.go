package anncache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lexmatch-io/lexmatch/internal/db"
	"github.com/lexmatch-io/lexmatch/internal/domain"
)

type mockAnnotator struct {
	doc   domain.AnnotatedDocument
	err   error
	calls int
}

func (m *mockAnnotator) Annotate(_ context.Context, _ string) (domain.AnnotatedDocument, error) {
	m.calls++
	if m.err != nil {
		return domain.AnnotatedDocument{}, m.err
	}
	return m.doc, nil
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedAnnotator(t *testing.T, inner *mockAnnotator) (*CachedAnnotator, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	ca := New(inner, ms, "builtin", time.Hour, nil, zap.NewNop())
	return ca, ms
}
