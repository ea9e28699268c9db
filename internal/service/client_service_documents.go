package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// ── Weeks ───────────────────────────────────────────────────────────────────

type clientWeekService struct {
	set *engineSet[models.Week]
}

func newClientWeekService(deps *clientDeps) ClientWeekService {
	build := func(key string) (syncer.Capabilities[models.Week], syncer.Options[models.Week]) {
		path := adapter.WeekPath(key)
		return syncer.Capabilities[models.Week]{
				Load: func(ctx context.Context) (models.Week, error) {
					return fetchResource[models.Week](ctx, deps.adapter, path)
				},
				Save: func(ctx context.Context, w models.Week) error {
					return deps.adapter.Store(ctx, path, w, nil)
				},
			}, syncer.Options[models.Week]{
				Debounce: deps.cfg.Debounce,
				Normalize: func(w models.Week) models.Week {
					// the key never travels in the body
					w.Key = key
					return w
				},
			}
	}
	return &clientWeekService{set: newEngineSet(models.KindWeek, deps, build)}
}

func (s *clientWeekService) Open(ctx context.Context, key string) (*syncer.Engine[models.Week], error) {
	if err := validators.ValidWeekKey(key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return s.set.open(ctx, key)
}

// ── Settings ────────────────────────────────────────────────────────────────

type clientSettingsService struct {
	set *engineSet[models.Settings]
}

func newClientSettingsService(deps *clientDeps) ClientSettingsService {
	build := func(string) (syncer.Capabilities[models.Settings], syncer.Options[models.Settings]) {
		return syncer.Capabilities[models.Settings]{
				Load: func(ctx context.Context) (models.Settings, error) {
					env, err := fetchResource[models.SettingsEnvelope](ctx, deps.adapter, adapter.SettingsPath)
					return env.Settings, err
				},
				Save: func(ctx context.Context, s models.Settings) error {
					return deps.adapter.Store(ctx, adapter.SettingsPath, models.SettingsEnvelope{Settings: s}, nil)
				},
			}, syncer.Options[models.Settings]{
				Debounce:  deps.cfg.SettingsDebounce,
				Normalize: normalizeSettings,
			}
	}
	return &clientSettingsService{set: newEngineSet(models.KindSettings, deps, build)}
}

func (s *clientSettingsService) Open(ctx context.Context) (*syncer.Engine[models.Settings], error) {
	return s.set.open(ctx, models.SettingsKey)
}

// normalizeSettings gives a settings document without categories the
// default ones.
func normalizeSettings(s models.Settings) models.Settings {
	if len(s.Categories) == 0 {
		s.Categories = models.DefaultSettings().Categories
	}
	return s
}

// ── Annual reviews ──────────────────────────────────────────────────────────

type clientReviewService struct {
	set *engineSet[models.AnnualReview]
}

func newClientReviewService(deps *clientDeps) ClientReviewService {
	build := func(key string) (syncer.Capabilities[models.AnnualReview], syncer.Options[models.AnnualReview]) {
		year, _ := strconv.Atoi(key)
		path := adapter.ReviewPath(year)
		return syncer.Capabilities[models.AnnualReview]{
				Load: func(ctx context.Context) (models.AnnualReview, error) {
					env, err := fetchResource[models.ReviewEnvelope](ctx, deps.adapter, path)
					return env.Review, err
				},
				Save: func(ctx context.Context, r models.AnnualReview) error {
					return deps.adapter.Store(ctx, path, models.ReviewEnvelope{Review: r}, nil)
				},
				Delete: func(ctx context.Context) error {
					return removeResource(ctx, deps.adapter, path)
				},
			}, syncer.Options[models.AnnualReview]{
				Debounce: deps.cfg.Debounce,
				Normalize: func(r models.AnnualReview) models.AnnualReview {
					r.Year = year
					if r.Answers == nil {
						r.Answers = map[string]string{}
					}
					return r
				},
				IsEmpty: models.AnnualReview.IsEmpty,
			}
	}
	return &clientReviewService{set: newEngineSet(models.KindReview, deps, build)}
}

func (s *clientReviewService) Open(ctx context.Context, year int) (*syncer.Engine[models.AnnualReview], error) {
	if err := validators.ValidYear(year); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return s.set.open(ctx, strconv.Itoa(year))
}

// ── Year memories ───────────────────────────────────────────────────────────

type clientMemoriesService struct {
	set *engineSet[models.YearMemories]
}

func newClientMemoriesService(deps *clientDeps) ClientMemoriesService {
	build := func(key string) (syncer.Capabilities[models.YearMemories], syncer.Options[models.YearMemories]) {
		year, _ := strconv.Atoi(key)
		path := adapter.MemoriesPath(year)
		return syncer.Capabilities[models.YearMemories]{
				Load: func(ctx context.Context) (models.YearMemories, error) {
					env, err := fetchResource[models.MemoriesEnvelope](ctx, deps.adapter, path)
					return env.Memories, err
				},
				Save: func(ctx context.Context, m models.YearMemories) error {
					return deps.adapter.Store(ctx, path, models.MemoriesEnvelope{Memories: m}, nil)
				},
			}, syncer.Options[models.YearMemories]{
				Debounce: deps.cfg.Debounce,
				Normalize: func(m models.YearMemories) models.YearMemories {
					m.Year = year
					if m.Memories == nil {
						m.Memories = map[string]models.Memory{}
					}
					return m
				},
			}
	}
	return &clientMemoriesService{set: newEngineSet(models.KindMemories, deps, build)}
}

func (s *clientMemoriesService) Open(ctx context.Context, year int) (*syncer.Engine[models.YearMemories], error) {
	if err := validators.ValidYear(year); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return s.set.open(ctx, strconv.Itoa(year))
}
