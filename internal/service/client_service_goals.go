package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type clientGoalService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientGoalService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientGoalService {
	return &clientGoalService{adapter: serverAdapter, validator: validator, logger: logger}
}

func (s *clientGoalService) List(ctx context.Context) ([]models.Goal, error) {
	var env models.GoalsEnvelope
	if err := s.adapter.Fetch(ctx, adapter.GoalsPath, &env); err != nil {
		return nil, s.fail("List", "", err)
	}

	goals := env.Goals
	if goals == nil {
		goals = []models.Goal{}
	}
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}

func (s *clientGoalService) Create(ctx context.Context, goal models.Goal) (models.Goal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	err := s.validator.Validate(ctx, goal, validators.FieldTitle, validators.FieldQuarter, validators.FieldProgress)
	if err != nil {
		return models.Goal{}, &ValidationError{Message: app.MsgInvalidGoal, Err: err}
	}

	var out models.GoalEnvelope
	if err := s.adapter.Create(ctx, adapter.GoalsPath, models.GoalEnvelope{Goal: goal}, &out); err != nil {
		return models.Goal{}, s.fail("Create", "", err)
	}
	return out.Goal, nil
}

func (s *clientGoalService) Update(ctx context.Context, goal models.Goal) (models.Goal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	if err := s.validator.Validate(ctx, goal, validators.FieldID); err != nil {
		return models.Goal{}, &ValidationError{Message: app.MsgInvalidGoalID, Err: err}
	}
	err := s.validator.Validate(ctx, goal, validators.FieldTitle, validators.FieldQuarter, validators.FieldProgress)
	if err != nil {
		return models.Goal{}, &ValidationError{Message: app.MsgInvalidGoal, Err: err}
	}

	var out models.GoalEnvelope
	if err := s.adapter.Store(ctx, adapter.GoalPath(goal.ID), models.GoalEnvelope{Goal: goal}, &out); err != nil {
		return models.Goal{}, s.fail("Update", goal.ID, err)
	}
	return out.Goal, nil
}

func (s *clientGoalService) Delete(ctx context.Context, id string) error {
	if err := s.validator.Validate(ctx, models.Goal{ID: id}, validators.FieldID); err != nil {
		return &ValidationError{Message: app.MsgInvalidGoalID, Err: err}
	}

	if err := s.adapter.Remove(ctx, adapter.GoalPath(id)); err != nil {
		return s.fail("Delete", id, err)
	}
	return nil
}

func (s *clientGoalService) fail(fn, id string, err error) error {
	s.logger.Err(err).
		Str("func", "*clientGoalService."+fn).
		Str("goal", id).
		Msg("goal request failed")
	if mapped := mapAdapterError(err); mapped != err {
		return fmt.Errorf("%w: %w", mapped, err)
	}
	return err
}
