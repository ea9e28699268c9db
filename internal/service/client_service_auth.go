package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type clientAuthService struct {
	sessions  store.SessionStore
	adapter   adapter.ServerAdapter
	validator validators.Validator
	now       func() time.Time

	mu      sync.Mutex
	loaded  bool
	session *models.Session

	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return newClientAuthService(sessions, serverAdapter, validator, logger)
}

func newClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) *clientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	user.Login = strings.TrimSpace(user.Login)
	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, user.Login, token)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	user.Login = strings.TrimSpace(user.Login)
	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, user.Login, token)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.sessions.ClearSession(ctx); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Logout").Msg("clearing session failed")
		return err
	}
	a.session = nil
	a.loaded = true
	return nil
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	session := a.storedLocked(ctx)
	if session == nil || session.Token == "" {
		return models.Session{}, false
	}
	if a.expired(session.Token) {
		return models.Session{}, false
	}
	return *session, true
}

// owner returns the login of the stored session, expired or not. Local data
// stays attached to it until the user signs out.
func (a *clientAuthService) owner(ctx context.Context) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if session := a.storedLocked(ctx); session != nil {
		return session.Login
	}
	return ""
}

func (a *clientAuthService) storedLocked(ctx context.Context) *models.Session {
	if !a.loaded {
		session, ok, err := a.sessions.LoadSession(ctx)
		if err != nil {
			// retried on the next call
			a.logger.Err(err).Str("func", "*clientAuthService.Session").Msg("loading session failed")
			return nil
		}
		a.loaded = true
		if ok {
			a.session = &session
		}
	}
	return a.session
}

// Token implements [adapter.TokenSource]. Logged out yields an empty token
// and no error.
func (a *clientAuthService) Token(ctx context.Context) (string, error) {
	session, ok := a.Session(ctx)
	if !ok {
		return "", nil
	}
	return session.Token, nil
}

func (a *clientAuthService) saveSession(ctx context.Context, login, token string) error {
	session := models.Session{Login: login, Token: token, SavedAt: a.now()}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).
			Str("func", "*clientAuthService.saveSession").
			Str("login", login).
			Msg("persisting session failed")
		return err
	}
	a.session = &session
	a.loaded = true
	return nil
}

// expired reports whether token carries an expiry in the past. Tokens that
// cannot be decoded are left for the server to reject.
func (a *clientAuthService) expired(token string) bool {
	parsed, err := utils.ParseUnverifiedJWTToken(token)
	if err != nil {
		return false
	}
	exp := parsed.ExpiresAt()
	return !exp.IsZero() && !a.now().Before(exp)
}
