package http

import (
	"net/http"
	"testing"

	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		wantAllow string
	}{
		{name: "settings", method: http.MethodPost, target: "/api/settings", wantAllow: "GET, PUT"},
		{name: "goals collection", method: http.MethodPut, target: "/api/goals", wantAllow: "GET, POST"},
		{name: "goal item", method: http.MethodGet, target: "/api/goals/abc", wantAllow: "PUT, DELETE"},
		{name: "shipping day", method: http.MethodPost, target: "/api/shipping/2025/06/01", wantAllow: "GET, PUT, DELETE"},
		{name: "login", method: http.MethodGet, target: "/api/auth/login", wantAllow: "POST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)

			rec := th.do(t, tt.method, tt.target, "", false)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}

func TestNotFound(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodGet, "/api/unknown", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgResourceNotFound, errorMessage(t, rec))
}
