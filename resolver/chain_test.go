package resolver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sival/environment"
	"github.com/katalvlaran/sival/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// failingStore always returns err.
type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Put(context.Context, string, []byte) error   { return f.err }

// TestChain_PathFirst prefers a file over a store entry.
func TestChain_PathFirst(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aw-200"), []byte("file"), 0o644))
	mem := resolver.NewMemoryStore()
	require.NoError(t, mem.Put(context.Background(), "aw-200", []byte("store")))

	c := resolver.NewChain(resolver.WithPathRoot(dir), resolver.WithStore("mem", mem))
	data, err := c.Resolve(context.Background(), "aw-200")
	require.NoError(t, err)
	assert.Equal(t, "file", string(data))
}

// TestChain_DirStoreMixedCase resolves a model name against a record file
// that keeps its capitals.
func TestChain_DirStoreMixedCase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AW-200.json"), []byte("rec"), 0o644))

	c := resolver.NewChain(resolver.WithStore("dir", resolver.NewDirStore(dir)))
	data, err := c.Resolve(context.Background(), "AW-200")
	require.NoError(t, err)
	assert.Equal(t, "rec", string(data))
}

// TestChain_StoreOrder falls through misses and uses the normalised key.
func TestChain_StoreOrder(t *testing.T) {
	ctx := context.Background()
	first, second := resolver.NewMemoryStore(), resolver.NewMemoryStore()
	id := "4F7D3C1E-9A52-4B8E-8F11-2C6A0D9E5B73"
	require.NoError(t, second.Put(ctx, resolver.Key(id), []byte("rec")))

	c := resolver.NewChain(resolver.WithStore("a", first), resolver.WithStore("b", second))
	data, err := c.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "rec", string(data))
	assert.Equal(t, 0, first.Len(), "no write-back unless enabled")
}

// TestChain_WriteBack fills earlier stores on a later hit.
func TestChain_WriteBack(t *testing.T) {
	ctx := context.Background()
	cache, backing := resolver.NewMemoryStore(), resolver.NewMemoryStore()
	require.NoError(t, backing.Put(ctx, "tw-25", []byte("rec")))

	c := resolver.NewChain(
		resolver.WithStore("cache", cache),
		resolver.WithStore("backing", backing),
		resolver.WithWriteBack(),
	)
	_, err := c.Resolve(ctx, "TW-25")
	require.NoError(t, err)
	data, err := cache.Get(ctx, "tw-25")
	require.NoError(t, err)
	assert.Equal(t, "rec", string(data))
}

// TestChain_Miss wraps environment.ErrAccess and ErrNotFound.
func TestChain_Miss(t *testing.T) {
	c := resolver.NewChain(resolver.WithPathRoot(t.TempDir()), resolver.WithStore("mem", resolver.NewMemoryStore()))
	_, err := c.Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, environment.ErrAccess)
	assert.ErrorIs(t, err, resolver.ErrNotFound)

	_, err = c.Resolve(context.Background(), "  ")
	assert.ErrorIs(t, err, environment.ErrAccess)
	assert.ErrorIs(t, err, resolver.ErrEmptyIdentifier)
}

// TestChain_StoreFailure logs, continues, and reports the last failure.
func TestChain_StoreFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	broken := errors.New("redis down")
	mem := resolver.NewMemoryStore()
	require.NoError(t, mem.Put(context.Background(), "k", []byte("ok")))

	c := resolver.NewChain(
		resolver.WithStore("redis", failingStore{err: broken}),
		resolver.WithStore("mem", mem),
		resolver.WithLogger(zap.New(core)),
	)
	data, err := c.Resolve(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
	assert.Equal(t, 1, logs.FilterMessage("driver store failed").Len())

	only := resolver.NewChain(resolver.WithStore("redis", failingStore{err: broken}))
	_, err = only.Resolve(context.Background(), "k")
	assert.ErrorIs(t, err, environment.ErrAccess)
	assert.ErrorIs(t, err, broken)
}

// TestChain_ThroughEnvironment plugs the chain into an Environment.
func TestChain_ThroughEnvironment(t *testing.T) {
	mem := resolver.NewMemoryStore()
	require.NoError(t, mem.Put(context.Background(), "k", []byte("ok")))
	env := environment.New(resolver.NewChain(resolver.WithStore("mem", mem)))

	data, err := env.Resolve(context.Background(), "K")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))

	_, err = env.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, environment.ErrAccess)
}
