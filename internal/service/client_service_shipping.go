package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type clientShippingService struct {
	set     *engineSet[models.ShippingEntry]
	adapter adapter.ServerAdapter
	cache   store.LocalCache
	logger  *logger.Logger
}

func newClientShippingService(deps *clientDeps) ClientShippingService {
	mode := syncer.Debounced
	if deps.cfg.ShippingInline {
		mode = syncer.WriteThrough
	}

	build := func(date string) (syncer.Capabilities[models.ShippingEntry], syncer.Options[models.ShippingEntry]) {
		path := adapter.ShippingPath(date)
		return syncer.Capabilities[models.ShippingEntry]{
				Load: func(ctx context.Context) (models.ShippingEntry, error) {
					env, err := fetchResource[models.ShippingEnvelope](ctx, deps.adapter, path)
					return env.Entry, err
				},
				Save: func(ctx context.Context, e models.ShippingEntry) error {
					return deps.adapter.Store(ctx, path, models.ShippingEnvelope{Entry: e}, nil)
				},
				Delete: func(ctx context.Context) error {
					return removeResource(ctx, deps.adapter, path)
				},
			}, syncer.Options[models.ShippingEntry]{
				Debounce: deps.cfg.Debounce,
				Mode:     mode,
				Normalize: func(e models.ShippingEntry) models.ShippingEntry {
					e.Date = date
					return e
				},
				IsEmpty: models.ShippingEntry.IsEmpty,
			}
	}

	return &clientShippingService{
		set:     newEngineSet(models.KindShipping, deps, build),
		adapter: deps.adapter,
		cache:   deps.cache,
		logger:  deps.logger,
	}
}

func (s *clientShippingService) Open(ctx context.Context, date string) (*syncer.Engine[models.ShippingEntry], error) {
	if err := validators.ValidDate(date); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return s.set.open(ctx, date)
}

func (s *clientShippingService) List(ctx context.Context, year int) ([]models.ShippingEntry, error) {
	if err := validators.ValidYear(year); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	var env models.ShippingListEnvelope
	err := s.adapter.Fetch(ctx, adapter.ShippingYearPath(year), &env)
	if err != nil && !adapter.IsNotFound(err) {
		s.logger.Warn().Err(err).
			Str("func", "*clientShippingService.List").
			Int("year", year).
			Msg("listing shipping entries from server failed, using cache")
	}

	byDate := make(map[string]models.ShippingEntry, len(env.Entries))
	for _, e := range env.Entries {
		byDate[e.Date] = e
	}

	// Local edits not yet confirmed by the server win over the remote
	// listing. With the server unreachable every cached entry is used.
	offline := err != nil && !adapter.IsNotFound(err)
	if cacheErr := s.overlayCache(ctx, year, byDate, offline); cacheErr != nil {
		if offline {
			return nil, fmt.Errorf("error listing shipping entries: %w", cacheErr)
		}
		s.logger.Err(cacheErr).
			Str("func", "*clientShippingService.List").
			Int("year", year).
			Msg("reading cached shipping entries failed")
	}

	entries := make([]models.ShippingEntry, 0, len(byDate))
	for _, e := range byDate {
		if e.IsEmpty() {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	return entries, nil
}

// overlayCache merges the cached entries of year into byDate. Only dirty
// entries are applied unless all is set. A dirty tombstone removes the
// entry.
func (s *clientShippingService) overlayCache(ctx context.Context, year int, byDate map[string]models.ShippingEntry, all bool) error {
	prefix := models.CacheKey(models.KindShipping, fmt.Sprintf("%04d-", year))
	keys, err := s.cache.Keys(ctx, prefix)
	if err != nil {
		return err
	}

	for _, key := range keys {
		entry, ok, err := s.cache.Read(ctx, key)
		if err != nil {
			return err
		}
		if !ok || (!all && !entry.Dirty) {
			continue
		}

		date := strings.TrimPrefix(key, models.CacheKey(models.KindShipping, ""))
		if entry.Deleted {
			delete(byDate, date)
			continue
		}

		var e models.ShippingEntry
		if err := json.Unmarshal(entry.Value, &e); err != nil {
			continue
		}
		e.Date = date
		byDate[date] = e
	}

	return nil
}
