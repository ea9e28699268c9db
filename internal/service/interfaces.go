package service

import (
	"context"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ResourceService stores the JSON documents of every synced resource kind.
// Payloads are the inner documents of the wire envelopes.
type ResourceService interface {
	// Get returns ErrResourceNotFound when the user never stored the
	// resource or deleted it.
	Get(ctx context.Context, userID int64, kind models.ResourceKind, key string) (models.Resource, error)
	// Put replaces the resource and returns it as stored.
	Put(ctx context.Context, resource models.Resource) (models.Resource, error)
	// Create stores a new resource. An empty key is replaced by a new UUID.
	Create(ctx context.Context, resource models.Resource) (models.Resource, error)
	// Delete returns ErrResourceNotFound when nothing was deleted.
	Delete(ctx context.Context, userID int64, kind models.ResourceKind, key string) error
	// List returns the resources of kind whose key starts with keyPrefix.
	List(ctx context.Context, userID int64, kind models.ResourceKind, keyPrefix string) ([]models.Resource, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
