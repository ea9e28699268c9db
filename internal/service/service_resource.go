// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// resourceService is the storage-backed [ResourceService]. It rewrites every
// payload into its canonical form before storing it: identity taken from the
// key, plan weeks renumbered, server timestamps set.
type resourceService struct {
	repository store.ResourceRepository
	ids        *utils.UUIDGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewResourceService(repository store.ResourceRepository, logger *logger.Logger) ResourceService {
	return &resourceService{
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *resourceService) Get(ctx context.Context, userID int64, kind models.ResourceKind, key string) (models.Resource, error) {
	resource, err := s.repository.GetResource(ctx, userID, kind, key)
	if err != nil {
		return models.Resource{}, mapStoreError(err)
	}
	return resource, nil
}

func (s *resourceService) Put(ctx context.Context, resource models.Resource) (models.Resource, error) {
	log := logger.FromContext(ctx)

	doc, err := decodeDocument(resource.Kind, resource.Key, resource.Payload)
	if err != nil {
		return models.Resource{}, err
	}

	var existing any
	if resource.Kind == models.KindGoal {
		prev, err := s.repository.GetResource(ctx, resource.UserID, resource.Kind, resource.Key)
		switch {
		case err == nil:
			existing, _ = decodeDocument(prev.Kind, prev.Key, prev.Payload)
		case !errors.Is(err, store.ErrResourceNotFound):
			return models.Resource{}, mapStoreError(err)
		}
	}
	stamp(doc, existing, s.now())

	payload, err := json.Marshal(doc)
	if err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidResource, err)
	}
	resource.Payload = payload

	saved, err := s.repository.PutResource(ctx, resource)
	if err != nil {
		log.Err(err).
			Str("func", "*resourceService.Put").
			Str("kind", resource.Kind.String()).
			Str("key", resource.Key).
			Msg("storing resource failed")
		return models.Resource{}, mapStoreError(err)
	}

	return saved, nil
}

func (s *resourceService) Create(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if resource.Key == "" {
		resource.Key = s.ids.Generate()
	}
	return s.Put(ctx, resource)
}

func (s *resourceService) Delete(ctx context.Context, userID int64, kind models.ResourceKind, key string) error {
	if err := s.repository.DeleteResource(ctx, userID, kind, key); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *resourceService) List(ctx context.Context, userID int64, kind models.ResourceKind, keyPrefix string) ([]models.Resource, error) {
	resources, err := s.repository.ListResources(ctx, userID, kind, keyPrefix)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return resources, nil
}

// mapStoreError turns the repository's not-found error into the service
// sentinel and wraps everything else unchanged.
func mapStoreError(err error) error {
	if errors.Is(err, store.ErrResourceNotFound) {
		return fmt.Errorf("%w: %w", ErrResourceNotFound, err)
	}
	return err
}
