package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/mock"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testServerApp = config.ServerApp{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "hi-time",
	TokenDuration: time.Hour,
}

func newTestServerAuth(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	return NewAuthService(repo, hasher, testServerApp, logger.Nop()), repo, hasher
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_StoresHashOnly(t *testing.T) {
	svc, repo, hasher := newTestServerAuth(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret").Return("$argon2id$hash", nil)
	repo.EXPECT().CreateUser(ctx, models.User{Login: "alice", PasswordHash: "$argon2id$hash"}).
		Return(models.User{UserID: 7, Login: "alice"}, nil)

	got, err := svc.RegisterUser(ctx, models.User{Login: " alice ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestAuthService_RegisterUser_Errors(t *testing.T) {
	svc, repo, hasher := newTestServerAuth(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	hasher.EXPECT().Hash("secret").Return("h", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err = svc.RegisterUser(ctx, models.User{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 3, Login: "alice", PasswordHash: "h"}

	tests := []struct {
		name    string
		setup   func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		wantErr error
	}{
		{
			name: "success",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
				hasher.EXPECT().Verify("secret", "h").Return(true, nil)
			},
		},
		{
			name: "unknown login looks like wrong password",
			setup: func(repo *mock.MockUserRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name: "wrong password",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
				hasher.EXPECT().Verify("secret", "h").Return(false, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name: "repository failure",
			setup: func(repo *mock.MockUserRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{}, store.ErrExecutingQuery)
			},
			wantErr: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, hasher := newTestServerAuth(t)
			tt.setup(repo, hasher)

			got, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), got.UserID)
			assert.Empty(t, got.PasswordHash, "the hash never leaves the service")
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestServerAuth(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 11})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(11), parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_Misconfigured(t *testing.T) {
	svc := NewAuthService(nil, nil, config.ServerApp{}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
