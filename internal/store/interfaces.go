package store

import (
	"context"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ResourceRepository persists one JSON document per (user, kind, key).
type ResourceRepository interface {
	// GetResource returns ErrResourceNotFound when the row does not exist.
	GetResource(ctx context.Context, userID int64, kind models.ResourceKind, key string) (models.Resource, error)
	// PutResource inserts or replaces the row and returns it as stored.
	PutResource(ctx context.Context, resource models.Resource) (models.Resource, error)
	// DeleteResource returns ErrResourceNotFound when nothing was deleted.
	DeleteResource(ctx context.Context, userID int64, kind models.ResourceKind, key string) error
	// ListResources returns the user's rows of kind whose key starts with
	// keyPrefix, ordered by key. An empty prefix lists every row of kind.
	ListResources(ctx context.Context, userID int64, kind models.ResourceKind, keyPrefix string) ([]models.Resource, error)
}

// TableExporter reads whole tables for backups. A nil since exports every
// row; otherwise only rows updated at or after since.
type TableExporter interface {
	Tables() []string
	ExportTable(ctx context.Context, table string, since *time.Time) ([]map[string]any, error)
}

// ErrorClassificator decides whether a failed database call may succeed
// when retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
