package uos

import (
	"context"
	"sync"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/singleflight"
)

// FetchFunc loads a whole collection from the service.
type FetchFunc[T any] func(ctx context.Context) (Result[T], error)

// Collection memoizes the result of a "fetch all" call for the lifetime of the
// value. A cached result, failed or not, is served until an explicit flush.
//
// Concurrent callers that miss the cache share one in-flight fetch, so at most
// one round trip per collection is outstanding at a time.
type Collection[T any] struct {
	name   string
	fetch  FetchFunc[T]
	logger hclog.Logger

	mu     sync.RWMutex
	cached *Result[T]

	// flight coalesces concurrent fetches; the collection name is the only key.
	flight singleflight.Group
}

// NewCollection creates an empty collection cache.
func NewCollection[T any](name string, fetch FetchFunc[T], logger hclog.Logger) *Collection[T] {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Collection[T]{
		name:   name,
		fetch:  fetch,
		logger: logger.Named("collection").With("collection", name),
	}
}

// FetchAll returns the cached result unless flush is set or nothing is cached
// yet, in which case it fetches and stores a new one.
//
// The shared fetch is detached from the caller's cancellation and bounded by
// the transport timeout instead. A caller whose ctx ends first gets a failed
// Result that is not cached. A *ConfigError is returned as error and never cached.
func (c *Collection[T]) FetchAll(ctx context.Context, flush bool) (Result[T], error) {
	if !flush {
		if res, ok := c.Cached(); ok {
			c.logger.Trace("cache hit")
			return res, nil
		}
	}

	ch := c.flight.DoChan(c.name, func() (interface{}, error) {
		// Another flight may have filled the slot while this one waited.
		if !flush {
			if res, ok := c.Cached(); ok {
				return res, nil
			}
		}

		c.logger.Debug("fetching collection", "flush", flush)
		res, err := c.fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(res)
		if !res.OK {
			c.logger.Debug("collection fetch failed, caching failure", "error", res.Error)
		}
		return res, nil
	})

	select {
	case <-ctx.Done():
		return Failf[T]("canceled: %v", ctx.Err()), nil
	case r := <-ch:
		if r.Err != nil {
			return Result[T]{}, r.Err
		}
		return r.Val.(Result[T]), nil
	}
}

// Flush discards the cached result by fetching a new one.
func (c *Collection[T]) Flush(ctx context.Context) (Result[T], error) {
	return c.FetchAll(ctx, true)
}

// Cached returns the cached result, if any.
func (c *Collection[T]) Cached() (Result[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cached == nil {
		return Result[T]{}, false
	}
	return *c.cached, true
}

func (c *Collection[T]) store(res Result[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = &res
}
