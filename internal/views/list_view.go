package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrUnknownFilter = errors.New("unknown filter")
	ErrNotMounted    = errors.New("view is not mounted")
)

// Source fetches the full collection behind a view
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type Option[T any] func(*ListView[T])

// Exclusive makes the filters mutually exclusive: setting one query clears the others.
func Exclusive[T any]() Option[T] {
	return func(v *ListView[T]) { v.exclusive = true }
}

func WithFilters[T any](filters ...Filter[T]) Option[T] {
	return func(v *ListView[T]) { v.filters = append(v.filters, filters...) }
}

func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(v *ListView[T]) { v.logger = logger }
}

// WithID lets Find look records up by their backend id.
func WithID[T any](id func(T) string) Option[T] {
	return func(v *ListView[T]) { v.id = id }
}

// ListView holds one fetched collection and the queries filtering it.
//
// The collection is fetched once per mount and is the source of truth; the
// visible subset is derived from it on every read. A fetch only commits if
// the view is still mounted and no newer fetch has started.
type ListView[T any] struct {
	name    string
	source  Source[T]
	filters []Filter[T]
	id      func(T) string
	logger  *zap.Logger

	mu        sync.RWMutex
	exclusive bool
	all       []T
	queries   map[string]string
	loaded    bool
	lastErr   error
	gen       uint64
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewListView creates an unmounted view named name over source
func NewListView[T any](name string, source Source[T], opts ...Option[T]) *ListView[T] {
	v := &ListView[T]{
		name:    name,
		source:  source,
		queries: make(map[string]string),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *ListView[T]) Name() string {
	return v.name
}

func (v *ListView[T]) Filters() []Filter[T] {
	return v.filters
}

func (v *ListView[T]) IsExclusive() bool {
	return v.exclusive
}

// Mount scopes every later fetch to parent. Mounting an already mounted view is a no-op.
func (v *ListView[T]) Mount(parent context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.ctx != nil {
		return
	}
	v.ctx, v.cancel = context.WithCancel(parent)
}

// Unmount cancels outstanding fetches and discards the fetched collection.
func (v *ListView[T]) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
	}
	v.ctx, v.cancel = nil, nil
	v.all = nil
	v.loaded = false
	v.gen++
}

// Load fetches the collection unless it has already been fetched since mount.
func (v *ListView[T]) Load() error {
	v.mu.RLock()
	loaded := v.loaded
	v.mu.RUnlock()
	if loaded {
		return nil
	}
	return v.Refresh()
}

// Refresh re-fetches the full collection and replaces the current one.
// On failure the error is logged and the view is left empty.
func (v *ListView[T]) Refresh() error {
	v.mu.Lock()
	if v.ctx == nil {
		v.mu.Unlock()
		return ErrNotMounted
	}
	v.gen++
	gen, ctx := v.gen, v.ctx
	v.mu.Unlock()

	records, err := v.source.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen || ctx.Err() != nil {
		v.logger.Debug("discarding stale fetch", zap.String("view", v.name))
		return context.Canceled
	}
	if err != nil {
		v.logger.Error("failed to fetch collection", zap.String("view", v.name), zap.Error(err))
		v.all = nil
		v.loaded = false
		v.lastErr = err
		return err
	}
	v.all = records
	v.loaded = true
	v.lastErr = nil
	v.logger.Debug("collection fetched", zap.String("view", v.name), zap.Int("records", len(records)))
	return nil
}

func (v *ListView[T]) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}

// Err is the error of the last fetch, if it failed.
func (v *ListView[T]) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastErr
}

// SetQuery sets the query of the named filter.
func (v *ListView[T]) SetQuery(name, query string) error {
	if _, ok := v.filter(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.exclusive {
		clear(v.queries)
	}
	v.queries[name] = query
	return nil
}

func (v *ListView[T]) Query(name string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.queries[name]
}

// Clear resets the named query to empty.
func (v *ListView[T]) Clear(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.queries, name)
}

func (v *ListView[T]) ClearAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.queries)
}

// All returns the fetched collection, unfiltered.
func (v *ListView[T]) All() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]T(nil), v.all...)
}

// Visible returns the records matching every non-empty query.
func (v *ListView[T]) Visible() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()

	visible := v.all
	for _, f := range v.filters {
		if q := v.queries[f.Name]; q != "" {
			visible = Apply(visible, q, f.Match)
		}
	}
	return append([]T(nil), visible...)
}

// Find returns the fetched record with the given backend id.
func (v *ListView[T]) Find(id string) (T, bool) {
	var zero T
	if v.id == nil {
		return zero, false
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, record := range v.all {
		if v.id(record) == id {
			return record, true
		}
	}
	return zero, false
}

func (v *ListView[T]) filter(name string) (Filter[T], bool) {
	for _, f := range v.filters {
		if f.Name == name {
			return f, true
		}
	}
	return Filter[T]{}, false
}
