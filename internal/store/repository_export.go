package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type tableExporter struct {
	db     *DB
	logger *logger.Logger
}

// NewTableExporter constructs the PostgreSQL [TableExporter]. Every
// resource kind is one table; "users" exports accounts without password
// hashes.
func NewTableExporter(db *DB, logger *logger.Logger) TableExporter {
	return &tableExporter{db: db, logger: logger}
}

func (e *tableExporter) Tables() []string {
	tables := make([]string, 0, len(models.AllKinds)+1)
	tables = append(tables, usersTable)
	for _, kind := range models.AllKinds {
		tables = append(tables, kind.String())
	}
	return tables
}

func (e *tableExporter) ExportTable(ctx context.Context, table string, since *time.Time) ([]map[string]any, error) {
	if table == usersTable {
		return e.exportUsers(ctx, since)
	}

	kind := models.ResourceKind(table)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	query, args, err := buildExportResourcesQuery(kind, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		e.logger.Err(err).Str("func", "*tableExporter.ExportTable").Str("table", table).Msg("export query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]map[string]any, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, map[string]any{
			"user_id":      res.UserID,
			"kind":         res.Kind.String(),
			"resource_key": res.Key,
			"payload":      json.RawMessage(res.Payload),
			"created_at":   res.CreatedAt,
			"updated_at":   res.UpdatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func (e *tableExporter) exportUsers(ctx context.Context, since *time.Time) ([]map[string]any, error) {
	query, args, err := buildExportUsersQuery(since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		e.logger.Err(err).Str("func", "*tableExporter.exportUsers").Msg("export query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]map[string]any, 0)
	for rows.Next() {
		var (
			id                   int64
			login, name          string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &login, &name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, map[string]any{
			"user_id":    id,
			"login":      login,
			"name":       name,
			"created_at": createdAt,
			"updated_at": updatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}
