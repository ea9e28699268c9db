package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type resourceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewResourceRepository constructs the PostgreSQL [ResourceRepository].
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *resourceRepository) GetResource(ctx context.Context, userID int64, kind models.ResourceKind, key string) (models.Resource, error) {
	log := logger.FromContext(ctx)

	res, err := scanResource(r.db.QueryRowContext(ctx, getResource, userID, string(kind), key))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*resourceRepository.GetResource").
			Int64("user_id", userID).
			Str("kind", kind.String()).
			Str("key", key).
			Msg("failed to get resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res, nil
}

func (r *resourceRepository) PutResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	log := logger.FromContext(ctx)

	saved, err := scanResource(r.db.QueryRowContext(ctx, upsertResource,
		resource.UserID,
		string(resource.Kind),
		resource.Key,
		[]byte(resource.Payload),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrResourceNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "*resourceRepository.PutResource").
			Int64("user_id", resource.UserID).
			Str("kind", resource.Kind.String()).
			Str("key", resource.Key).
			Msg("failed to upsert resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *resourceRepository) DeleteResource(ctx context.Context, userID int64, kind models.ResourceKind, key string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteResource, userID, string(kind), key)
	if err != nil {
		log.Err(err).
			Str("func", "*resourceRepository.DeleteResource").
			Int64("user_id", userID).
			Str("kind", kind.String()).
			Str("key", key).
			Msg("failed to delete resource")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

func (r *resourceRepository) ListResources(ctx context.Context, userID int64, kind models.ResourceKind, keyPrefix string) ([]models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListResourcesQuery(userID, kind, keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*resourceRepository.ListResources").
			Int64("user_id", userID).
			Str("kind", kind.String()).
			Str("prefix", keyPrefix).
			Msg("failed to list resources")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	resources := make([]models.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (models.Resource, error) {
	var (
		res     models.Resource
		kind    string
		payload []byte
	)
	if err := row.Scan(&res.UserID, &kind, &res.Key, &payload, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return models.Resource{}, err
	}
	res.Kind = models.ResourceKind(kind)
	res.Payload = payload
	return res, nil
}
