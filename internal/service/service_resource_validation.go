package service

import (
	"context"
	"fmt"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// resourceValidationService decorates a [ResourceService] and rejects
// malformed keys and documents before they reach the inner service.
type resourceValidationService struct {
	inner     ResourceService
	validator validators.Validator
	logger    *logger.Logger
}

type resourceValidationWrapper struct {
	validator validators.Validator
	logger    *logger.Logger
}

func NewResourceValidationService(validator validators.Validator, logger *logger.Logger) ResourceServiceWrapper {
	return &resourceValidationWrapper{validator: validator, logger: logger}
}

func (w *resourceValidationWrapper) Wrap(inner ResourceService) ResourceService {
	return &resourceValidationService{inner: inner, validator: w.validator, logger: w.logger}
}

func (v *resourceValidationService) Get(ctx context.Context, userID int64, kind models.ResourceKind, key string) (models.Resource, error) {
	if err := v.validateAddress(ctx, userID, kind, key); err != nil {
		return models.Resource{}, err
	}
	return v.inner.Get(ctx, userID, kind, key)
}

func (v *resourceValidationService) Put(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if err := v.validateResource(ctx, resource, true); err != nil {
		return models.Resource{}, err
	}
	return v.inner.Put(ctx, resource)
}

func (v *resourceValidationService) Create(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if err := v.validateResource(ctx, resource, resource.Key != ""); err != nil {
		return models.Resource{}, err
	}
	return v.inner.Create(ctx, resource)
}

func (v *resourceValidationService) Delete(ctx context.Context, userID int64, kind models.ResourceKind, key string) error {
	if err := v.validateAddress(ctx, userID, kind, key); err != nil {
		return err
	}
	return v.inner.Delete(ctx, userID, kind, key)
}

func (v *resourceValidationService) List(ctx context.Context, userID int64, kind models.ResourceKind, keyPrefix string) ([]models.Resource, error) {
	err := v.validator.Validate(ctx, models.Resource{UserID: userID, Kind: kind}, validators.FieldUserID, validators.FieldKind)
	if err != nil {
		return nil, v.reject(ctx, "List", kind, keyPrefix, err)
	}
	return v.inner.List(ctx, userID, kind, keyPrefix)
}

func (v *resourceValidationService) validateAddress(ctx context.Context, userID int64, kind models.ResourceKind, key string) error {
	err := v.validator.Validate(ctx, models.Resource{UserID: userID, Kind: kind, Key: key},
		validators.FieldUserID, validators.FieldKind, validators.FieldKey)
	if err != nil {
		return v.reject(ctx, "validateAddress", kind, key, fmt.Errorf("%w: %w", ErrInvalidKey, err))
	}
	return nil
}

func (v *resourceValidationService) validateResource(ctx context.Context, resource models.Resource, withKey bool) error {
	fields := []string{validators.FieldUserID, validators.FieldKind, validators.FieldPayload}
	if err := v.validator.Validate(ctx, resource, fields...); err != nil {
		return v.reject(ctx, "validateResource", resource.Kind, resource.Key, fmt.Errorf("%w: %w", ErrInvalidResource, err))
	}

	if withKey {
		if err := v.validator.Validate(ctx, resource, validators.FieldKey); err != nil {
			return v.reject(ctx, "validateResource", resource.Kind, resource.Key, fmt.Errorf("%w: %w", ErrInvalidKey, err))
		}
	}

	doc, err := decodeDocument(resource.Kind, resource.Key, resource.Payload)
	if err != nil {
		return v.reject(ctx, "validateResource", resource.Kind, resource.Key, err)
	}

	if fields := documentFields(resource.Kind); len(fields) > 0 {
		if err := v.validator.Validate(ctx, doc, fields...); err != nil {
			return v.reject(ctx, "validateResource", resource.Kind, resource.Key, fmt.Errorf("%w: %w", ErrInvalidResource, err))
		}
	}

	return nil
}

func (v *resourceValidationService) reject(ctx context.Context, fn string, kind models.ResourceKind, key string, err error) error {
	logger.FromContext(ctx).Warn().Err(err).
		Str("func", "*resourceValidationService."+fn).
		Str("kind", kind.String()).
		Str("key", key).
		Msg("resource rejected")
	return err
}
