package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/mock"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "signed.jwt.token"
	testUserID = int64(42)
)

type testHandler struct {
	router    http.Handler
	auth      *mock.MockAuthService
	resources *mock.MockResourceService
	appInfo   *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		auth:      mock.NewMockAuthService(ctrl),
		resources: mock.NewMockResourceService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		AuthService:     th.auth,
		ResourceService: th.resources,
		AppInfoService:  th.appInfo,
	}, logger.Nop())
	th.router = h.Init()
	return th
}

// expectAuthorized makes the auth middleware accept testToken once.
func (th *testHandler) expectAuthorized() {
	th.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil)
}

func (th *testHandler) do(t *testing.T, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(th *testHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}
