// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// Engine keeps one resource of type T in memory, mirrors every change to the
// local cache and pushes it to the server after a quiet period.
//
// All methods are safe for concurrent use. Remote calls never run while the
// engine lock is held; at most one remote write is in flight at a time.
type Engine[T any] struct {
	key   string
	cache store.LocalCache
	caps  Capabilities[T]
	opts  Options[T]
	clock Clock
	log   *logger.Logger

	// wtMu serialises write-through Set and Update calls.
	wtMu sync.Mutex

	mu           sync.Mutex
	value        T
	fingerprint  uint64
	zeroPrint    uint64
	status       models.SyncStatus
	dirty        bool
	lastSyncedAt time.Time
	lastErr      error
	rev          uint64
	inFlight     bool
	rerun        bool
	stale        bool
	timer        Timer
	timerGen     uint64
	closed       bool

	subsMu  sync.Mutex
	subs    map[int]func(Snapshot[T])
	nextSub int

	background sync.WaitGroup
}

// New creates an engine for one resource. The engine starts idle with the
// zero value; call Mount to load it.
func New[T any](cache store.LocalCache, caps Capabilities[T], opts Options[T]) (*Engine[T], error) {
	if cache == nil {
		return nil, fmt.Errorf("%w: cache is required", ErrInvalidEngine)
	}
	if caps.Load == nil || caps.Save == nil {
		return nil, fmt.Errorf("%w: load and save capabilities are required", ErrInvalidEngine)
	}
	if opts.Key == "" {
		return nil, fmt.Errorf("%w: key is required", ErrInvalidEngine)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.FlushTimeout <= 0 {
		opts.FlushTimeout = DefaultFlushTimeout
	}
	if opts.Clock == nil {
		opts.Clock = RealClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	e := &Engine[T]{
		key:    opts.Key,
		cache:  cache,
		caps:   caps,
		opts:   opts,
		clock:  opts.Clock,
		log:    opts.Logger,
		status: models.StatusIdle,
		subs:   make(map[int]func(Snapshot[T])),
	}

	var zero T
	e.value = e.normalize(zero)
	fp, err := utils.Fingerprint(e.value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEngine, err)
	}
	e.fingerprint = fp
	e.zeroPrint = fp

	return e, nil
}

// Key returns the cache key of the resource.
func (e *Engine[T]) Key() string {
	return e.key
}

// Mount loads the resource from the server. On success the value is adopted
// and cached as clean. When the server confirms the resource is absent the
// cache is cleared. Any other failure falls back to the cached value and
// keeps its dirty flag: only an entry with unconfirmed edits is pushed
// later. A clean fallback is marked stale and reloaded by [Registry.Resync];
// no retry is scheduled otherwise.
func (e *Engine[T]) Mount(ctx context.Context) {
	e.mu.Lock()
	startRev := e.rev
	if !e.dirty && !e.inFlight {
		e.status = models.StatusLoading
	}
	e.mu.Unlock()
	e.notify()

	remote, err := e.caps.Load(ctx)

	e.mu.Lock()
	if e.rev != startRev {
		// The UI changed the value while loading; the local edit is newer.
		e.mu.Unlock()
		e.log.Debug().Str("func", "Engine.Mount").Str("key", e.key).Msg("discarding remote value after local mutation")
		return
	}

	switch {
	case err == nil:
		e.adoptRemoteLocked(ctx, remote)
	case errors.Is(err, ErrAbsent):
		e.resetLocked()
		if cerr := e.cache.Clear(ctx, e.key); cerr != nil {
			e.log.Err(cerr).Str("func", "Engine.Mount").Str("key", e.key).Msg("failed to clear cache")
		}
	default:
		e.log.Warn().Err(err).Str("func", "Engine.Mount").Str("key", e.key).Msg("remote load failed, falling back to cache")
		e.adoptCachedLocked(ctx, err)
		e.stale = !e.dirty
	}
	e.mu.Unlock()
	e.notify()
}

func (e *Engine[T]) adoptRemoteLocked(ctx context.Context, remote T) {
	remote = e.normalize(remote)

	if entry, ok, err := e.cache.Read(ctx, e.key); err == nil && ok && entry.Dirty {
		e.log.Warn().Str("func", "Engine.Mount").Str("key", e.key).Msg("remote value replaces unsynced local changes")
	}

	fp, err := utils.Fingerprint(remote)
	if err != nil {
		e.log.Err(err).Str("func", "Engine.Mount").Str("key", e.key).Msg("remote value cannot be encoded")
		e.status = models.StatusError
		e.lastErr = err
		return
	}

	now := e.clock.Now()
	e.value = remote
	e.fingerprint = fp
	e.dirty = false
	e.stale = false
	e.status = models.StatusSynced
	e.lastSyncedAt = now
	e.lastErr = nil

	e.writeCacheLocked(ctx, false, false)
}

func (e *Engine[T]) adoptCachedLocked(ctx context.Context, loadErr error) {
	entry, ok, err := e.cache.Read(ctx, e.key)
	if err != nil {
		e.log.Err(err).Str("func", "Engine.Mount").Str("key", e.key).Msg("failed to read cache")
	}
	if err != nil || !ok {
		e.resetLocked()
		e.lastErr = loadErr
		return
	}

	var cached T
	if !entry.Deleted {
		if err = json.Unmarshal(entry.Value, &cached); err != nil {
			e.log.Warn().Err(err).Str("func", "Engine.Mount").Str("key", e.key).Msg("cached value does not decode")
			e.resetLocked()
			e.lastErr = loadErr
			return
		}
	} else if !entry.Dirty {
		e.resetLocked()
		e.lastErr = loadErr
		return
	}

	cached = e.normalize(cached)
	fp, err := utils.Fingerprint(cached)
	if err != nil {
		e.resetLocked()
		e.lastErr = loadErr
		return
	}

	e.value = cached
	e.fingerprint = fp
	e.dirty = entry.Dirty
	e.status = models.StatusPending
	e.lastSyncedAt = entry.LastSyncedAt
	e.lastErr = loadErr
}

// Set replaces the value. In debounced mode it updates memory and the cache
// and (re)arms the debounce timer; only cache encoding problems are returned.
// In write-through mode it pushes the value immediately and rolls back on
// failure, returning the remote error.
//
// A value whose fingerprint equals the current one is ignored.
func (e *Engine[T]) Set(ctx context.Context, v T) error {
	if e.opts.Mode == WriteThrough {
		return e.setWriteThrough(ctx, v)
	}

	e.mu.Lock()
	changed, err := e.applyLocked(ctx, v)
	e.mu.Unlock()

	if changed {
		e.notify()
	}
	return err
}

// Update applies fn to a copy of the current value and stores the result as
// Set would.
func (e *Engine[T]) Update(ctx context.Context, fn func(T) T) error {
	if e.opts.Mode == WriteThrough {
		e.wtMu.Lock()
		defer e.wtMu.Unlock()

		e.mu.Lock()
		next := fn(e.clone(e.value))
		e.mu.Unlock()
		return e.writeThroughLocked(ctx, next)
	}

	e.mu.Lock()
	changed, err := e.applyLocked(ctx, fn(e.clone(e.value)))
	e.mu.Unlock()

	if changed {
		e.notify()
	}
	return err
}

func (e *Engine[T]) applyLocked(ctx context.Context, v T) (bool, error) {
	v = e.normalize(v)
	fp, err := utils.Fingerprint(v)
	if err != nil {
		return false, err
	}
	if fp == e.fingerprint {
		return false, nil
	}

	e.value = v
	e.fingerprint = fp
	e.rev++
	e.dirty = true
	e.status = models.StatusPending
	e.lastErr = nil

	e.writeCacheLocked(ctx, true, e.deletesLocked())
	if !e.closed {
		e.armLocked()
	}
	return true, nil
}

func (e *Engine[T]) setWriteThrough(ctx context.Context, v T) error {
	e.wtMu.Lock()
	defer e.wtMu.Unlock()
	return e.writeThroughLocked(ctx, v)
}

// writeThroughLocked runs with wtMu held.
func (e *Engine[T]) writeThroughLocked(ctx context.Context, v T) error {
	v = e.normalize(v)
	fp, err := utils.Fingerprint(v)
	if err != nil {
		return err
	}

	e.mu.Lock()
	if fp == e.fingerprint && !e.dirty {
		e.mu.Unlock()
		return nil
	}

	prev := struct {
		value        T
		fingerprint  uint64
		dirty        bool
		lastSyncedAt time.Time
	}{e.value, e.fingerprint, e.dirty, e.lastSyncedAt}
	prevEntry, hadEntry, readErr := e.cache.Read(ctx, e.key)

	e.value = v
	e.fingerprint = fp
	e.rev++
	e.dirty = true
	e.status = models.StatusSyncing
	e.inFlight = true
	deleting := e.deletesLocked()
	e.writeCacheLocked(ctx, true, deleting)
	e.mu.Unlock()
	e.notify()

	err = e.push(ctx, v, deleting)

	e.mu.Lock()
	e.inFlight = false
	if err != nil {
		e.value = prev.value
		e.fingerprint = prev.fingerprint
		e.dirty = prev.dirty
		e.lastSyncedAt = prev.lastSyncedAt
		e.status = models.StatusError
		e.lastErr = err

		switch {
		case readErr != nil:
			e.log.Err(readErr).Str("func", "Engine.Set").Str("key", e.key).Msg("cache entry could not be restored")
		case hadEntry:
			if werr := e.cache.Write(ctx, e.key, prevEntry); werr != nil {
				e.log.Err(werr).Str("func", "Engine.Set").Str("key", e.key).Msg("failed to restore cache entry")
			}
		default:
			if cerr := e.cache.Clear(ctx, e.key); cerr != nil {
				e.log.Err(cerr).Str("func", "Engine.Set").Str("key", e.key).Msg("failed to restore cache entry")
			}
		}
		e.mu.Unlock()
		e.notify()

		e.log.Err(err).Str("func", "Engine.Set").Str("key", e.key).Msg("write-through failed, rolled back")
		return err
	}

	e.markSyncedLocked(ctx, deleting)
	e.mu.Unlock()
	e.notify()
	return nil
}

// SyncNow cancels the debounce timer and pushes the pending value right
// away, returning the remote error. It does nothing when the value is clean.
// If a write is already in flight the request is recorded and another write
// follows it.
func (e *Engine[T]) SyncNow(ctx context.Context) error {
	return e.flush(ctx)
}

func (e *Engine[T]) flush(ctx context.Context) error {
	e.mu.Lock()
	if e.inFlight {
		e.rerun = true
		e.mu.Unlock()
		return nil
	}
	if !e.dirty {
		e.mu.Unlock()
		return nil
	}

	e.disarmLocked()
	e.inFlight = true
	e.status = models.StatusSyncing
	v := e.value
	startRev := e.rev
	deleting := e.deletesLocked()
	e.mu.Unlock()
	e.notify()

	err := e.push(ctx, v, deleting)

	e.mu.Lock()
	e.inFlight = false
	rerun := e.rerun
	e.rerun = false
	mutated := e.rev != startRev

	switch {
	case mutated && !e.dirty:
		// Cleared while the write was in flight.
	case err != nil && mutated:
		// A newer edit is waiting; it gets its own attempt.
		e.lastErr = err
		e.status = models.StatusPending
		if e.timer == nil && !e.closed {
			e.armLocked()
		}
	case err != nil:
		e.lastErr = err
		e.status = models.StatusError
	case !mutated:
		e.markSyncedLocked(ctx, deleting)
	default:
		e.lastSyncedAt = e.clock.Now()
		e.status = models.StatusPending
	}

	again := err == nil && mutated && e.dirty && (rerun || e.timer == nil)
	e.mu.Unlock()
	e.notify()

	if err != nil {
		e.log.Err(err).Str("func", "Engine.flush").Str("key", e.key).Msg("remote write failed")
		return err
	}

	if again {
		return e.flush(ctx)
	}
	return nil
}

func (e *Engine[T]) push(ctx context.Context, v T, deleting bool) error {
	if deleting {
		err := e.caps.Delete(ctx)
		if errors.Is(err, ErrAbsent) {
			return nil
		}
		return err
	}
	return e.caps.Save(ctx, v)
}

func (e *Engine[T]) markSyncedLocked(ctx context.Context, deleted bool) {
	e.dirty = false
	e.stale = false
	e.status = models.StatusSynced
	e.lastSyncedAt = e.clock.Now()
	e.lastErr = nil

	if deleted {
		if err := e.cache.Clear(ctx, e.key); err != nil {
			e.log.Err(err).Str("func", "Engine.markSynced").Str("key", e.key).Msg("failed to clear cache")
		}
		return
	}
	e.writeCacheLocked(ctx, false, false)
}

// Close cancels the debounce timer. A pending value gets one final
// best-effort write in the background, bounded by the flush timeout. Close
// never waits for it; use Wait.
func (e *Engine[T]) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.disarmLocked()
	needFlush := e.dirty && !e.inFlight
	e.mu.Unlock()

	if !needFlush {
		return
	}

	e.background.Add(1)
	go func() {
		defer e.background.Done()

		ctx, cancel := context.WithTimeout(context.Background(), e.opts.FlushTimeout)
		defer cancel()

		if err := e.flush(ctx); err != nil {
			e.log.Warn().Err(err).Str("func", "Engine.Close").Str("key", e.key).Msg("final flush failed, value kept in cache")
		}
	}()
}

// Wait blocks until background flushes started by Close finish.
func (e *Engine[T]) Wait() {
	e.background.Wait()
}

// Clear forgets the resource: timer, memory and cache. The server is not
// touched.
func (e *Engine[T]) Clear(ctx context.Context) error {
	e.mu.Lock()
	e.disarmLocked()
	e.resetLocked()
	e.rev++
	err := e.cache.Clear(ctx, e.key)
	e.mu.Unlock()
	e.notify()

	if err != nil {
		return fmt.Errorf("error clearing cache of %s: %w", e.key, err)
	}
	return nil
}

// Snapshot returns a copy of the observable state.
func (e *Engine[T]) Snapshot() Snapshot[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Status returns the current sync status.
func (e *Engine[T]) Status() models.SyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Dirty reports whether local changes are not yet confirmed by the server.
func (e *Engine[T]) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Stale reports whether the value came from the cache after a failed load
// and carries no local edits.
func (e *Engine[T]) Stale() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stale && !e.dirty
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned function removes the subscription.
func (e *Engine[T]) Subscribe(fn func(Snapshot[T])) (cancel func()) {
	e.subsMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subsMu.Unlock()

	return func() {
		e.subsMu.Lock()
		delete(e.subs, id)
		e.subsMu.Unlock()
	}
}

func (e *Engine[T]) notify() {
	e.subsMu.Lock()
	if len(e.subs) == 0 {
		e.subsMu.Unlock()
		return
	}
	subs := make([]func(Snapshot[T]), 0, len(e.subs))
	for _, fn := range e.subs {
		subs = append(subs, fn)
	}
	e.subsMu.Unlock()

	snap := e.Snapshot()
	for _, fn := range subs {
		fn(snap)
	}
}

func (e *Engine[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		Key:          e.key,
		Value:        e.clone(e.value),
		Status:       e.status,
		Dirty:        e.dirty,
		LastSyncedAt: e.lastSyncedAt,
		Err:          e.lastErr,
	}
}

func (e *Engine[T]) armLocked() {
	e.disarmLocked()
	gen := e.timerGen
	e.timer = e.clock.AfterFunc(e.opts.Debounce, func() { e.onTimer(gen) })
}

func (e *Engine[T]) disarmLocked() {
	e.timerGen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine[T]) onTimer(gen uint64) {
	e.mu.Lock()
	if gen != e.timerGen || e.closed {
		e.mu.Unlock()
		return
	}
	e.timer = nil
	e.mu.Unlock()

	// The error is already recorded in the status and logged.
	_ = e.flush(context.Background())
}

func (e *Engine[T]) resetLocked() {
	var zero T
	e.value = e.normalize(zero)
	e.fingerprint = e.zeroPrint
	e.dirty = false
	e.stale = false
	e.status = models.StatusIdle
	e.lastErr = nil
}

func (e *Engine[T]) deletesLocked() bool {
	return e.caps.Delete != nil && e.opts.IsEmpty != nil && e.opts.IsEmpty(e.value)
}

func (e *Engine[T]) writeCacheLocked(ctx context.Context, dirty, deleted bool) {
	data, err := json.Marshal(e.value)
	if err != nil {
		e.log.Err(err).Str("func", "Engine.writeCache").Str("key", e.key).Msg("value cannot be encoded")
		return
	}

	entry := models.CacheEntry{
		Value:        data,
		Dirty:        dirty,
		Deleted:      deleted,
		LastSyncedAt: e.lastSyncedAt,
		UpdatedAt:    e.clock.Now(),
	}
	if err = e.cache.Write(ctx, e.key, entry); err != nil {
		e.log.Err(err).Str("func", "Engine.writeCache").Str("key", e.key).Msg("failed to write cache")
	}
}

func (e *Engine[T]) normalize(v T) T {
	if e.opts.Normalize == nil {
		return v
	}
	return e.opts.Normalize(v)
}

// clone deep-copies v through its JSON encoding so callers cannot mutate
// engine state through shared maps or slices.
func (e *Engine[T]) clone(v T) T {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}

	var out T
	if err = json.Unmarshal(data, &out); err != nil {
		return v
	}
	return e.normalize(out)
}
