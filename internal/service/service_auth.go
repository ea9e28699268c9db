package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/crypto"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// tokenParams are the JWT settings shared by issuing and parsing.
type tokenParams struct {
	signKey  string
	issuer   string
	lifetime time.Duration
}

// authService registers hi-time accounts, checks credentials against the
// argon2id hashes in the users table and issues the bearer tokens every
// resource route requires.
type authService struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher
	token  tokenParams
	logger *logger.Logger
}

func NewAuthService(users store.UserRepository, hasher crypto.PasswordHasher, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		token: tokenParams{
			signKey:  cfg.TokenSignKey,
			issuer:   cfg.TokenIssuer,
			lifetime: cfg.TokenDuration,
		},
		logger: logger,
	}
}

// credentials trims the login and rejects an empty login or password.
func credentials(ctx context.Context, user models.User) (string, error) {
	login := strings.TrimSpace(user.Login)
	if login == "" || user.Password == "" {
		logger.FromContext(ctx).Error().Str("login", login).Msg("invalid user data provided")
		return "", ErrInvalidDataProvided
	}
	return login, nil
}

// RegisterUser stores a new account. Only the password hash reaches the
// repository; a taken login surfaces as store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	login, err := credentials(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	log := logger.FromContext(ctx).With().Str("login", login).Logger()

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.users.CreateUser(ctx, models.User{Login: login, PasswordHash: hash})
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login returns the account matching the credentials. An unknown login and a
// wrong password both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	login, err := credentials(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	log := logger.FromContext(ctx).With().Str("login", login).Logger()

	found, err := a.users.FindUserByLogin(ctx, login)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Warn().Msg("login for unknown user")
		return models.User{}, ErrWrongPassword
	case err != nil:
		log.Err(err).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	match, err := a.hasher.Verify(user.Password, found.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", found.UserID).Msg("stored password hash is unreadable")
		return models.User{}, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		log.Warn().Int64("id", found.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	found.PasswordHash = ""
	return found, nil
}

func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.token.issuer, user.UserID, a.token.lifetime, a.token.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken folds every validation failure into ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.token.signKey, a.token.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
