package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type clientPlanService struct {
	set       *engineSet[models.QuarterlyPlan]
	validator validators.Validator
	logger    *logger.Logger
}

func newClientPlanService(deps *clientDeps, validator validators.Validator) ClientPlanService {
	build := func(id string) (syncer.Capabilities[models.QuarterlyPlan], syncer.Options[models.QuarterlyPlan]) {
		path := adapter.PlanPath(id)
		return syncer.Capabilities[models.QuarterlyPlan]{
				Load: func(ctx context.Context) (models.QuarterlyPlan, error) {
					env, err := fetchResource[models.PlanEnvelope](ctx, deps.adapter, path)
					return env.Plan, err
				},
				Save: func(ctx context.Context, p models.QuarterlyPlan) error {
					return deps.adapter.Store(ctx, path, models.PlanEnvelope{Plan: p}, nil)
				},
			}, syncer.Options[models.QuarterlyPlan]{
				Debounce: deps.cfg.Debounce,
				Normalize: func(p models.QuarterlyPlan) models.QuarterlyPlan {
					p.ID = id
					return p.Normalized()
				},
			}
	}
	return &clientPlanService{
		set:       newEngineSet(models.KindPlan, deps, build),
		validator: validator,
		logger:    deps.logger,
	}
}

func (s *clientPlanService) Open(ctx context.Context, id string) (*syncer.Engine[models.QuarterlyPlan], error) {
	if err := validators.ValidPlanID(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return s.set.open(ctx, id)
}

func (s *clientPlanService) Import(ctx context.Context, id string, raw []byte) (models.QuarterlyPlan, error) {
	var plan models.QuarterlyPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "*clientPlanService.Import").
			Str("plan", id).
			Msg("imported file is not a plan")
		return models.QuarterlyPlan{}, &ValidationError{Message: app.MsgPlanNotJSON, Err: err}
	}

	if err := s.validator.Validate(ctx, plan, validators.FieldStartDate); err != nil {
		return models.QuarterlyPlan{}, &ValidationError{Message: app.MsgPlanAnchorMissing, Err: err}
	}

	engine, err := s.Open(ctx, id)
	if err != nil {
		return models.QuarterlyPlan{}, err
	}
	if err := engine.Set(ctx, plan); err != nil {
		return models.QuarterlyPlan{}, err
	}

	return engine.Snapshot().Value, nil
}

func (s *clientPlanService) Export(ctx context.Context, id string) ([]byte, error) {
	engine, err := s.Open(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(engine.Snapshot().Value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding plan %s: %w", id, err)
	}
	return data, nil
}
