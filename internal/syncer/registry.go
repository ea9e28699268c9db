package syncer

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"golang.org/x/sync/errgroup"
)

// Flusher is the type-erased view of an [Engine] used by the [Registry].
type Flusher interface {
	Key() string
	Status() models.SyncStatus
	Dirty() bool
	Stale() bool
	Mount(ctx context.Context)
	SyncNow(ctx context.Context) error
	Close()
	Wait()
}

// Registry tracks every live engine of the client so they can be flushed
// and closed together.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Flusher
	logger  *logger.Logger
}

func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{engines: make(map[string]Flusher), logger: log}
}

// Register adds f, replacing an engine with the same key.
func (r *Registry) Register(f Flusher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[f.Key()] = f
}

func (r *Registry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.engines, key)
}

func (r *Registry) Get(key string) (Flusher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.engines[key]
	return f, ok
}

// Keys returns the registered keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.engines))
	for k := range r.engines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) snapshot() []Flusher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Flusher, 0, len(r.engines))
	for _, f := range r.engines {
		out = append(out, f)
	}
	return out
}

// FlushAll pushes every dirty engine concurrently and returns the first
// failure. A failing engine does not stop the others.
func (r *Registry) FlushAll(ctx context.Context) error {
	var g errgroup.Group
	for _, f := range r.snapshot() {
		f := f
		if !f.Dirty() {
			continue
		}
		g.Go(func() error {
			if err := f.SyncNow(ctx); err != nil {
				r.logger.Err(err).Str("func", "Registry.FlushAll").Str("key", f.Key()).Msg("flush failed")
				return fmt.Errorf("flush %s: %w", f.Key(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Resync brings every engine back in line with the server after a period
// offline: dirty engines are pushed and stale ones are loaded again. It
// returns the first push failure.
func (r *Registry) Resync(ctx context.Context) error {
	var g errgroup.Group
	for _, f := range r.snapshot() {
		f := f
		switch {
		case f.Dirty():
			g.Go(func() error {
				if err := f.SyncNow(ctx); err != nil {
					r.logger.Err(err).Str("func", "Registry.Resync").Str("key", f.Key()).Msg("flush failed")
					return fmt.Errorf("flush %s: %w", f.Key(), err)
				}
				return nil
			})
		case f.Stale():
			g.Go(func() error {
				f.Mount(ctx)
				return nil
			})
		}
	}
	return g.Wait()
}

// CloseAll closes every engine, waits for their final flushes and empties
// the registry.
func (r *Registry) CloseAll() {
	engines := r.snapshot()
	for _, f := range engines {
		f.Close()
	}
	for _, f := range engines {
		f.Wait()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range engines {
		if r.engines[f.Key()] == f {
			delete(r.engines, f.Key())
		}
	}
}

// Status folds the engines' statuses into one for a status bar: error wins
// over syncing, then pending, loading, synced and idle.
func (r *Registry) Status() models.SyncStatus {
	rank := map[models.SyncStatus]int{
		models.StatusIdle:    0,
		models.StatusSynced:  1,
		models.StatusLoading: 2,
		models.StatusPending: 3,
		models.StatusSyncing: 4,
		models.StatusError:   5,
	}

	worst := models.StatusIdle
	for _, f := range r.snapshot() {
		if s := f.Status(); rank[s] > rank[worst] {
			worst = s
		}
	}
	return worst
}

// Counts returns how many engines are in each status.
func (r *Registry) Counts() map[models.SyncStatus]int {
	counts := make(map[models.SyncStatus]int)
	for _, f := range r.snapshot() {
		counts[f.Status()]++
	}
	return counts
}
