package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

var userRowColumns = []string{"user_id", "login", "name", "password_hash", "created_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &userRepository{db: &DB{DB: db, logger: l}, logger: l}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser(t *testing.T) {
	const hash = "$argon2id$v=19$m=65536,t=1,p=2$c2FsdA$aGFzaA"
	user := models.User{Login: "maya", Name: "Maya", PasswordHash: hash}

	tests := []struct {
		name    string
		result  func(q *sqlmock.ExpectedQuery)
		wantID  int64
		wantErr error
	}{
		{
			name: "stored",
			result: func(q *sqlmock.ExpectedQuery) {
				q.WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "maya", "Maya", hash, time.Now()))
			},
			wantID: 1,
		},
		{
			name:    "login taken",
			result:  func(q *sqlmock.ExpectedQuery) { q.WillReturnError(pgError(pgerrcode.UniqueViolation)) },
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name:    "connection lost",
			result:  func(q *sqlmock.ExpectedQuery) { q.WillReturnError(errors.New("db network error")) },
			wantErr: errors.New("unexpected DB error: db network error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.result(mock.ExpectQuery("INSERT INTO users").WithArgs("maya", "Maya", hash))

			created, err := repo.CreateUser(context.Background(), user)
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, created.UserID)
				assert.Equal(t, "maya", created.Login)
			case errors.Is(tt.wantErr, ErrLoginAlreadyExists):
				assert.ErrorIs(t, err, ErrLoginAlreadyExists)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindUserByLogin(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT user_id").WithArgs("maya").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "maya", "Maya", "hash", time.Now()))

		found, err := repo.FindUserByLogin(context.Background(), "maya")
		require.NoError(t, err)
		assert.Equal(t, int64(3), found.UserID)
		assert.Equal(t, "hash", found.PasswordHash)
	})

	t.Run("unknown login", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT user_id").WithArgs("maya").
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := repo.FindUserByLogin(context.Background(), "maya")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("query fails", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT user_id").WithArgs("maya").
			WillReturnError(errors.New("db failure"))

		_, err := repo.FindUserByLogin(context.Background(), "maya")
		assert.ErrorContains(t, err, "unexpected DB error")
		assert.NotErrorIs(t, err, ErrNoUserWasFound)
	})
}
