package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sival/environment"
	"go.uber.org/zap"
)

type namedStore struct {
	name  string
	store Store
}

// Chain resolves an identifier as a path first and then as a key in each
// store, in the order they were added.
type Chain struct {
	files     Files
	usePaths  bool
	stores    []namedStore
	writeBack bool
	log       *zap.Logger
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithPathRoot enables path lookup, relative paths joined to root ("" for
// the working directory).
func WithPathRoot(root string) ChainOption {
	return func(c *Chain) {
		c.files = Files{Root: root}
		c.usePaths = true
	}
}

// WithStore appends a store; name is used in log fields.
func WithStore(name string, s Store) ChainOption {
	return func(c *Chain) {
		if s != nil {
			c.stores = append(c.stores, namedStore{name: name, store: s})
		}
	}
}

// WithWriteBack copies a record found in a later store into every earlier
// store, so a Redis placed in front of PostgreSQL acts as a cache.
func WithWriteBack() ChainOption {
	return func(c *Chain) { c.writeBack = true }
}

// WithLogger sets the logger; nil keeps zap.NewNop.
func WithLogger(l *zap.Logger) ChainOption {
	return func(c *Chain) {
		if l != nil {
			c.log = l
		}
	}
}

// NewChain builds a Chain. Without options it resolves nothing.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{log: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(c)
		}
	}

	return c
}

// Resolve implements environment.Resolver.
func (c *Chain) Resolve(ctx context.Context, identifier string) ([]byte, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, fmt.Errorf("%w: %w", environment.ErrAccess, ErrEmptyIdentifier)
	}
	if c.usePaths {
		data, err := c.files.Resolve(ctx, identifier)
		if err == nil {
			c.log.Debug("driver resolved from file", zap.String("identifier", identifier))

			return data, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %q: %w", environment.ErrAccess, identifier, err)
		}
	}

	key := Key(identifier)
	var last error
	for i, ns := range c.stores {
		data, err := ns.store.Get(ctx, key)
		if err == nil {
			c.log.Debug("driver resolved from store",
				zap.String("store", ns.name), zap.String("key", key))
			if c.writeBack {
				c.fill(ctx, key, data, c.stores[:i])
			}

			return data, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %q: %w", environment.ErrAccess, identifier, ctxErr)
		}
		if !errors.Is(err, ErrNotFound) {
			c.log.Warn("driver store failed",
				zap.String("store", ns.name), zap.String("key", key), zap.Error(err))
			last = err
		}
	}
	if last == nil {
		last = ErrNotFound
	}

	return nil, fmt.Errorf("%w: %q: %w", environment.ErrAccess, identifier, last)
}

func (c *Chain) fill(ctx context.Context, key string, data []byte, stores []namedStore) {
	for _, ns := range stores {
		if err := ns.store.Put(ctx, key, data); err != nil {
			c.log.Debug("driver write-back failed",
				zap.String("store", ns.name), zap.String("key", key), zap.Error(err))
		}
	}
}
