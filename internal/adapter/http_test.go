// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token(context.Context) (string, error) {
	return string(s), nil
}

type failingTokens struct{}

func (failingTokens) Token(context.Context) (string, error) {
	return "", errors.New("keyring locked")
}

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func newAuthedAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := newTestAdapter(t, serverURL)
	a.SetTokenSource(staticTokens("sometoken"))
	return a
}

// ── Constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://hi-time.example.com/", want: "https://hi-time.example.com"},
		{in: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestAuthenticate(t *testing.T) {
	type authFunc func(a *httpServerAdapter) (string, error)
	register := func(a *httpServerAdapter) (string, error) {
		return a.Register(context.Background(), models.User{Login: "maya", Name: "Maya", Password: "secret"})
	}
	login := func(a *httpServerAdapter) (string, error) {
		return a.Login(context.Background(), models.User{Login: "maya", Password: "secret"})
	}

	tests := []struct {
		name      string
		call      authFunc
		path      string
		status    int
		header    string
		body      string
		wantToken string
		wantErr   error
	}{
		{name: "register", call: register, path: "/api/auth/register", status: http.StatusCreated, header: "Bearer header.payload.signature", wantToken: "header.payload.signature"},
		{name: "login", call: login, path: "/api/auth/login", status: http.StatusOK, header: "Bearer tok", wantToken: "tok"},
		{name: "login taken", call: register, path: "/api/auth/register", status: http.StatusConflict, body: `{"error":"login already exists"}`, wantErr: ErrConflict},
		{name: "wrong password", call: login, path: "/api/auth/login", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "bad request", call: login, path: "/api/auth/login", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "forbidden", call: login, path: "/api/auth/login", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "server error", call: login, path: "/api/auth/login", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", call: login, path: "/api/auth/login", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "teapot", call: login, path: "/api/auth/login", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got models.User
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, "maya", got.Login)
				assert.Equal(t, "secret", got.Password)

				if tt.header != "" {
					w.Header().Set("Authorization", tt.header)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			token, err := tt.call(newTestAdapter(t, srv.URL))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthenticate_ConflictCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"login already exists"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.User{Login: "maya"})

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusConflict, reqErr.StatusCode)
	assert.Equal(t, "login already exists", reqErr.Body)
	assert.Equal(t, http.MethodPost, reqErr.Method)
}

func TestAuthenticate_MissingTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.User{Login: "maya"})
	assert.ErrorContains(t, err, "parse bearer token")
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion_NoTokenNeeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.AppBuildInfo{Version: "1.0.0", Date: "N/A", Commit: "abc"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	info, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "abc", info.Commit)
}

// ── Fetch ────────────────────────────────────────────────────────────────────

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/shipping/2025/06/01", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.ShippingEnvelope{Entry: models.ShippingEntry{Date: "2025-06-01", Shipped: "blog post"}})
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	var env models.ShippingEnvelope
	err := a.Fetch(context.Background(), ShippingPath("2025-06-01"), &env)

	require.NoError(t, err)
	assert.Equal(t, "blog post", env.Entry.Shipped)
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"resource not found"}`))
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	err := a.Fetch(context.Background(), WeekPath("2025-W23"), &models.Week{})

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestFetch_WithoutTokenIsUnauthenticated(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Fetch(context.Background(), SettingsPath, &models.SettingsEnvelope{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	a.SetTokenSource(staticTokens(""))
	err = a.Fetch(context.Background(), SettingsPath, &models.SettingsEnvelope{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.Zero(t, hits.Load())
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	err := a.Fetch(context.Background(), SettingsPath, &models.SettingsEnvelope{})
	assert.Error(t, err)
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newAuthedAdapter(t, url)
	err := a.Fetch(context.Background(), SettingsPath, &models.SettingsEnvelope{})
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Store / Create / Remove ─────────────────────────────────────────────────

func TestStore_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/reviews/2024", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var env models.ReviewEnvelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		_ = json.NewEncoder(w).Encode(env)
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	in := models.ReviewEnvelope{Review: models.AnnualReview{Year: 2024, Answers: map[string]string{"q1": "a"}}}
	var out models.ReviewEnvelope
	err := a.Store(context.Background(), ReviewPath(2024), in, &out)

	require.NoError(t, err)
	assert.Equal(t, in.Review.Answers, out.Review.Answers)
}

func TestCreate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, GoalsPath, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.GoalEnvelope{Goal: models.Goal{ID: "g-1", Title: "ship"}})
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	var out models.GoalEnvelope
	err := a.Create(context.Background(), GoalsPath, models.GoalEnvelope{Goal: models.Goal{Title: "ship"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "g-1", out.Goal.ID)
}

func TestRemove_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/shipping/2025/06/01", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	require.NoError(t, a.Remove(context.Background(), ShippingPath("2025-06-01")))
}

func TestWrites_WithoutTokenFailFast(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	sources := map[string]TokenSource{
		"no source":    nil,
		"empty token":  staticTokens(""),
		"source fails": failingTokens{},
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			a := newTestAdapter(t, srv.URL)
			if src != nil {
				a.SetTokenSource(src)
			}
			ctx := context.Background()

			assert.ErrorIs(t, a.Store(ctx, SettingsPath, models.SettingsEnvelope{}, nil), ErrNoCredential)
			assert.ErrorIs(t, a.Create(ctx, GoalsPath, models.GoalEnvelope{}, nil), ErrNoCredential)
			assert.ErrorIs(t, a.Remove(ctx, GoalPath("g-1")), ErrNoCredential)
		})
	}

	assert.Zero(t, hits.Load())
}

// ── Paths ────────────────────────────────────────────────────────────────────

func TestPaths(t *testing.T) {
	assert.Equal(t, "/api/weeks/2025-W23", WeekPath("2025-W23"))
	assert.Equal(t, "/api/goals/abc", GoalPath("abc"))
	assert.Equal(t, "/api/plans/2025-Q2", PlanPath("2025-Q2"))
	assert.Equal(t, "/api/shipping/2025", ShippingYearPath(2025))
	assert.Equal(t, "/api/shipping/2025/06/01", ShippingPath("2025-06-01"))
	assert.Equal(t, "/api/reviews/2024", ReviewPath(2024))
	assert.Equal(t, "/api/memories/2024", MemoriesPath(2024))
}
