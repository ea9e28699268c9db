// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// clientDeps are shared by every engine-backed client service.
type clientDeps struct {
	adapter  adapter.ServerAdapter
	cache    store.LocalCache
	registry *syncer.Registry
	clock    syncer.Clock
	cfg      config.Sync
	logger   *logger.Logger

	setsMu sync.Mutex
	sets   []interface{ forget() }
}

// forgetEngines drops every engine handed out so far. The engines must
// already be closed.
func (d *clientDeps) forgetEngines() {
	d.setsMu.Lock()
	defer d.setsMu.Unlock()
	for _, s := range d.sets {
		s.forget()
	}
}

// engineSet owns the engines of one resource kind, one per resource key.
type engineSet[T any] struct {
	kind  models.ResourceKind
	deps  *clientDeps
	build func(key string) (syncer.Capabilities[T], syncer.Options[T])

	mu      sync.Mutex
	engines map[string]*syncer.Engine[T]
}

func newEngineSet[T any](kind models.ResourceKind, deps *clientDeps, build func(key string) (syncer.Capabilities[T], syncer.Options[T])) *engineSet[T] {
	s := &engineSet[T]{
		kind:    kind,
		deps:    deps,
		build:   build,
		engines: make(map[string]*syncer.Engine[T]),
	}

	deps.setsMu.Lock()
	deps.sets = append(deps.sets, s)
	deps.setsMu.Unlock()
	return s
}

func (s *engineSet[T]) forget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.engines)
}

// open returns the engine of key, creating, registering and mounting it on
// first use.
func (s *engineSet[T]) open(ctx context.Context, key string) (*syncer.Engine[T], error) {
	s.mu.Lock()
	if e, ok := s.engines[key]; ok {
		s.mu.Unlock()
		return e, nil
	}

	caps, opts := s.build(key)
	opts.Key = models.CacheKey(s.kind, key)
	if opts.Clock == nil {
		opts.Clock = s.deps.clock
	}
	if opts.Logger == nil {
		opts.Logger = s.deps.logger
	}
	if opts.FlushTimeout == 0 {
		opts.FlushTimeout = s.deps.cfg.FlushTimeout
	}

	e, err := syncer.New(s.deps.cache, caps, opts)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("error creating engine for %s: %w", opts.Key, err)
	}
	s.engines[key] = e
	s.deps.registry.Register(e)
	s.mu.Unlock()

	e.Mount(ctx)
	return e, nil
}

// fetchResource GETs path into a fresh envelope of type E. A 404 becomes
// [syncer.ErrAbsent] so that engines can tell "confirmed absent" from
// "could not load".
func fetchResource[E any](ctx context.Context, a adapter.ServerAdapter, path string) (E, error) {
	var env E
	if err := a.Fetch(ctx, path, &env); err != nil {
		if adapter.IsNotFound(err) {
			return env, fmt.Errorf("%w: %w", syncer.ErrAbsent, err)
		}
		return env, err
	}
	return env, nil
}

// removeResource DELETEs path. A 404 means it is already gone.
func removeResource(ctx context.Context, a adapter.ServerAdapter, path string) error {
	if err := a.Remove(ctx, path); err != nil {
		if adapter.IsNotFound(err) {
			return fmt.Errorf("%w: %w", syncer.ErrAbsent, err)
		}
		return err
	}
	return nil
}
