package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

func newTestResourceRepo(t *testing.T) (*resourceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &resourceRepository{db: &DB{DB: db, logger: l}, logger: l}, mock
}

var resourceRowColumns = []string{"user_id", "kind", "resource_key", "payload", "created_at", "updated_at"}

// ── GetResource ──

func TestGetResource_Success(t *testing.T) {
	repo, mock := newTestResourceRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT user_id, kind, resource_key, payload").
		WithArgs(int64(7), "shipping", "2025-06-01").
		WillReturnRows(sqlmock.NewRows(resourceRowColumns).
			AddRow(7, "shipping", "2025-06-01", []byte(`{"shipped":"x"}`), now, now))

	res, err := repo.GetResource(context.Background(), 7, models.KindShipping, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, models.KindShipping, res.Kind)
	assert.JSONEq(t, `{"shipped":"x"}`, string(res.Payload))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetResource_NotFound(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectQuery("SELECT user_id, kind, resource_key, payload").
		WithArgs(int64(7), "weeks", "2025-W01").
		WillReturnRows(sqlmock.NewRows(resourceRowColumns))

	_, err := repo.GetResource(context.Background(), 7, models.KindWeek, "2025-W01")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestGetResource_DBError(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectQuery("SELECT user_id").WillReturnError(errors.New("conn reset"))

	_, err := repo.GetResource(context.Background(), 7, models.KindWeek, "2025-W01")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── PutResource ──

func TestPutResource_Upserts(t *testing.T) {
	repo, mock := newTestResourceRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO resources .* ON CONFLICT").
		WithArgs(int64(7), "settings", "default", []byte(`{"startingHour":7}`)).
		WillReturnRows(sqlmock.NewRows(resourceRowColumns).
			AddRow(7, "settings", "default", []byte(`{"startingHour":7}`), now, now))

	saved, err := repo.PutResource(context.Background(), models.Resource{
		UserID:  7,
		Kind:    models.KindSettings,
		Key:     "default",
		Payload: []byte(`{"startingHour":7}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "default", saved.Key)
	assert.Equal(t, now, saved.UpdatedAt)
}

// ── DeleteResource ──

func TestDeleteResource(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "nothing to delete", affected: 0, wantErr: ErrResourceNotFound},
		{name: "db failure", execErr: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestResourceRepo(t)
			exp := mock.ExpectExec("DELETE FROM resources").WithArgs(int64(7), "reviews", "2024")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteResource(context.Background(), 7, models.KindReview, "2024")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── ListResources ──

func TestListResources_WithPrefix(t *testing.T) {
	repo, mock := newTestResourceRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT user_id, kind, resource_key, payload, created_at, updated_at FROM resources WHERE user_id = \$1 AND kind = \$2 AND resource_key LIKE \$3 ORDER BY resource_key`).
		WithArgs(int64(7), "shipping", "2025-%").
		WillReturnRows(sqlmock.NewRows(resourceRowColumns).
			AddRow(7, "shipping", "2025-06-01", []byte(`{}`), now, now).
			AddRow(7, "shipping", "2025-06-02", []byte(`{}`), now, now))

	list, err := repo.ListResources(context.Background(), 7, models.KindShipping, "2025-")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-06-02", list[1].Key)
}

func TestListResources_Empty(t *testing.T) {
	repo, mock := newTestResourceRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(7), "goals").
		WillReturnRows(sqlmock.NewRows(resourceRowColumns))

	list, err := repo.ListResources(context.Background(), 7, models.KindGoal, "")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
