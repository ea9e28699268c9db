package syncer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryEngine(t *testing.T, key string, remote *fakeRemote, clock *ManualClock) *Engine[models.ShippingEntry] {
	t.Helper()
	e, err := New(store.NewMemoryCache(), remote.caps(), Options[models.ShippingEntry]{
		Key:   key,
		Clock: clock,
	})
	require.NoError(t, err)
	return e
}

func TestRegistry_FlushAll(t *testing.T) {
	clock := NewManualClock(time.Now())
	ok := &fakeRemote{}
	failing := &fakeRemote{saveErr: errTransport}
	clean := &fakeRemote{}
	ctx := context.Background()

	r := NewRegistry(nil)
	a := newRegistryEngine(t, "shipping/2025-06-01", ok, clock)
	b := newRegistryEngine(t, "shipping/2025-06-02", failing, clock)
	c := newRegistryEngine(t, "shipping/2025-06-03", clean, clock)
	r.Register(a)
	r.Register(b)
	r.Register(c)

	require.NoError(t, a.Set(ctx, entry("a")))
	require.NoError(t, b.Set(ctx, entry("b")))

	err := r.FlushAll(ctx)
	require.ErrorIs(t, err, errTransport)
	assert.Contains(t, err.Error(), "shipping/2025-06-02")

	assert.Equal(t, 1, ok.saveCount())
	assert.Equal(t, 1, failing.saveCount())
	assert.Zero(t, clean.saveCount())

	assert.Equal(t, models.StatusSynced, a.Status())
	assert.Equal(t, models.StatusError, b.Status())
	assert.Equal(t, models.StatusError, r.Status())
	assert.Equal(t, map[models.SyncStatus]int{
		models.StatusSynced: 1,
		models.StatusError:  1,
		models.StatusIdle:   1,
	}, r.Counts())
}

func TestRegistry_KeysAndUnregister(t *testing.T) {
	clock := NewManualClock(time.Now())
	r := NewRegistry(nil)
	r.Register(newRegistryEngine(t, "weeks/2025-W02", &fakeRemote{}, clock))
	r.Register(newRegistryEngine(t, "weeks/2025-W01", &fakeRemote{}, clock))

	assert.Equal(t, []string{"weeks/2025-W01", "weeks/2025-W02"}, r.Keys())

	_, found := r.Get("weeks/2025-W01")
	assert.True(t, found)

	r.Unregister("weeks/2025-W01")
	_, found = r.Get("weeks/2025-W01")
	assert.False(t, found)
	assert.Equal(t, models.StatusIdle, r.Status())
}

func TestRegistry_CloseAllWaitsForFinalFlushes(t *testing.T) {
	clock := NewManualClock(time.Now())
	remote := &fakeRemote{}
	r := NewRegistry(nil)
	e := newRegistryEngine(t, shippingKey, remote, clock)
	r.Register(e)

	require.NoError(t, e.Set(context.Background(), entry("bye")))
	r.CloseAll()

	assert.Equal(t, 1, remote.saveCount())
	assert.Equal(t, models.StatusSynced, e.Status())
	assert.Empty(t, r.Keys())
}

func TestRegistry_ResyncPushesDirtyAndReloadsStale(t *testing.T) {
	clock := NewManualClock(time.Now())
	ctx := context.Background()

	edited := &fakeRemote{loadErr: errTransport}
	editedCache := store.NewMemoryCache()
	seedCache(t, editedCache, entry("edited offline"), true)

	fallback := &fakeRemote{loadErr: errTransport}
	fallbackCache := store.NewMemoryCache()
	require.NoError(t, fallbackCache.Write(ctx, "shipping/2025-06-02", models.CacheEntry{
		Value: json.RawMessage(`{"date":"2025-06-01","shipped":"old from cache","completed":false}`),
	}))

	newEngine := func(key string, remote *fakeRemote, cache *store.MemoryCache) *Engine[models.ShippingEntry] {
		e, err := New(cache, remote.caps(), Options[models.ShippingEntry]{Key: key, Clock: clock})
		require.NoError(t, err)
		e.Mount(ctx)
		return e
	}

	r := NewRegistry(nil)
	a := newEngine("shipping/2025-06-01", edited, editedCache)
	b := newEngine("shipping/2025-06-02", fallback, fallbackCache)
	r.Register(a)
	r.Register(b)

	for _, remote := range []*fakeRemote{edited, fallback} {
		remote.mu.Lock()
		remote.loadErr = nil
		remote.mu.Unlock()
	}
	fallback.mu.Lock()
	fallback.value, fallback.exists = entry("newer on server"), true
	fallback.mu.Unlock()

	require.NoError(t, r.Resync(ctx))

	assert.Equal(t, 1, edited.saveCount())
	assert.Equal(t, models.StatusSynced, a.Status())

	assert.Zero(t, fallback.saveCount())
	assert.Equal(t, entry("newer on server"), b.Snapshot().Value)
	assert.False(t, b.Stale())
}
