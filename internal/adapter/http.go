package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter talks to the REST server at cfg.HTTPAddress. A bare
// host:port is treated as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewAPIClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetTokenSource(tokens TokenSource) {
	h.mu.Lock()
	h.tokens = tokens
	h.mu.Unlock()
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

// authenticate posts the credentials and returns the token the server puts
// in the Authorization response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (string, error) {
	resp, err := h.send(h.client.R().SetContext(ctx).SetBody(user), http.MethodPost, path)
	if err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("parse bearer token: %w", err)
	}
	return token, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.send(h.client.R().SetContext(ctx), http.MethodGet, "/api/version")
	if err != nil {
		return info, err
	}
	return info, decodeBody(resp, &info)
}

func (h *httpServerAdapter) Fetch(ctx context.Context, path string, out any) error {
	req, ok := h.authorized(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	return h.exchange(req, http.MethodGet, path, out)
}

func (h *httpServerAdapter) Store(ctx context.Context, path string, in, out any) error {
	req, ok := h.authorized(ctx)
	if !ok {
		return ErrNoCredential
	}
	return h.exchange(req.SetBody(in), http.MethodPut, path, out)
}

func (h *httpServerAdapter) Create(ctx context.Context, path string, in, out any) error {
	req, ok := h.authorized(ctx)
	if !ok {
		return ErrNoCredential
	}
	return h.exchange(req.SetBody(in), http.MethodPost, path, out)
}

func (h *httpServerAdapter) Remove(ctx context.Context, path string) error {
	req, ok := h.authorized(ctx)
	if !ok {
		return ErrNoCredential
	}
	return h.exchange(req, http.MethodDelete, path, nil)
}

// send executes req and turns a failed round trip or a non-2xx status into
// the package's sentinel errors.
func (h *httpServerAdapter) send(req *resty.Request, method, path string) (*resty.Response, error) {
	if req.Body != nil {
		req.SetHeader("Content-Type", "application/json")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.send").Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if !IsNotFound(err) {
			h.logger.Warn().Err(err).Str("func", "httpServerAdapter.send").Msg("server rejected request")
		}
		return nil, err
	}
	return resp, nil
}

func (h *httpServerAdapter) exchange(req *resty.Request, method, path string, out any) error {
	resp, err := h.send(req, method, path)
	if err != nil || out == nil {
		return err
	}
	return decodeBody(resp, out)
}

// authorized returns a request carrying the bearer token. ok is false when
// no source is installed or it yields no token.
func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, bool) {
	h.mu.RLock()
	tokens := h.tokens
	h.mu.RUnlock()

	if tokens == nil {
		return nil, false
	}
	token, err := tokens.Token(ctx)
	if err != nil || token == "" {
		return nil, false
	}

	return h.client.R().SetContext(ctx).SetHeader("Authorization", utils.BearerHeader(token)), true
}

func decodeBody(resp *resty.Response, out any) error {
	body := resp.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response of %s: %w", resp.Request.URL, err)
	}
	return nil
}
