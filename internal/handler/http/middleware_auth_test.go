package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		setup       func(th *testHandler)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no header",
			setup:       func(*testHandler) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgNoTokenProvided,
		},
		{
			name:        "not a bearer",
			header:      "Basic YWxpY2U6c2VjcmV0",
			setup:       func(*testHandler) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgNoTokenProvided,
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(th *testHandler) {
				th.auth.EXPECT().ParseToken(gomock.Any(), "stale").Return(models.Token{}, errors.New("token has expired"))
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:   "lowercase scheme",
			header: "bearer fresh",
			setup: func(th *testHandler) {
				th.auth.EXPECT().ParseToken(gomock.Any(), "fresh").Return(models.Token{UserID: 9}, nil)
				th.resources.EXPECT().Get(gomock.Any(), int64(9), models.KindSettings, models.SettingsKey).
					Return(models.Resource{Payload: []byte(`{}`)}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			tt.setup(th)

			req := newRequest(http.MethodGet, "/api/settings")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(th, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
			}
		})
	}
}

func TestAuthMiddleware_PublicRoutesSkipAuth(t *testing.T) {
	th := newTestHandler(t)
	th.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{Version: "1.0.0"})

	rec := th.do(t, http.MethodGet, "/api/version", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
}
