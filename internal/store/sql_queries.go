package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	getResource = `SELECT user_id, kind, resource_key, payload, created_at, updated_at
		FROM resources
		WHERE user_id = $1 AND kind = $2 AND resource_key = $3;`

	upsertResource = `INSERT INTO resources (user_id, kind, resource_key, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, kind, resource_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
		RETURNING user_id, kind, resource_key, payload, created_at, updated_at;`

	deleteResource = `DELETE FROM resources
		WHERE user_id = $1 AND kind = $2 AND resource_key = $3;`
)

// usersTable is the backup name of the users export.
const usersTable = "users"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	resourceColumns = []string{"user_id", "kind", "resource_key", "payload", "created_at", "updated_at"}
	userColumns     = []string{"user_id", "login", "name", "created_at", "updated_at"}
)

// buildListResourcesQuery selects one user's rows of kind, optionally
// narrowed to keys starting with keyPrefix.
func buildListResourcesQuery(userID int64, kind models.ResourceKind, keyPrefix string) (string, []any, error) {
	q := psql.Select(resourceColumns...).
		From("resources").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"kind": string(kind)}).
		OrderBy("resource_key")

	if keyPrefix != "" {
		q = q.Where(sq.Like{"resource_key": escapeLike(keyPrefix) + "%"})
	}

	return q.ToSql()
}

// buildExportResourcesQuery selects every user's rows of kind, optionally
// only those updated at or after since.
func buildExportResourcesQuery(kind models.ResourceKind, since *time.Time) (string, []any, error) {
	q := psql.Select(resourceColumns...).
		From("resources").
		Where(sq.Eq{"kind": string(kind)}).
		OrderBy("user_id", "resource_key")

	if since != nil {
		q = q.Where(sq.GtOrEq{"updated_at": *since})
	}

	return q.ToSql()
}

// buildExportUsersQuery selects user accounts without password hashes.
func buildExportUsersQuery(since *time.Time) (string, []any, error) {
	q := psql.Select(userColumns...).
		From(usersTable).
		OrderBy("user_id")

	if since != nil {
		q = q.Where(sq.GtOrEq{"updated_at": *since})
	}

	return q.ToSql()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
