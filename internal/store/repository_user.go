package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// userRepository keeps hi-time accounts in the users table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{db: db, logger: logger}
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Login, &u.Name, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// CreateUser inserts user and returns the stored row. A taken login maps to
// [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := scanUser(r.db.QueryRowContext(ctx, createUser, user.Login, user.Name, user.PasswordHash))
	if err == nil {
		return created, nil
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "*userRepository.CreateUser").
		Str("login", user.Login).
		Msg("error creating user")

	if postgresError(err) == pgerrcode.UniqueViolation {
		return models.User{}, ErrLoginAlreadyExists
	}
	return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
}

// FindUserByLogin maps a missing login to [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	found, err := scanUser(r.db.QueryRowContext(ctx, findUserByLogin, login))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "*userRepository.FindUserByLogin").
			Str("login", login).
			Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	return found, nil
}
