package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-prompt-tracker/internal/config"
	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/utils"
	"github.com/MKhiriev/go-prompt-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a REST implementation of [ServerAdapter] for
// cfg.ServerAddress. A bare host:port gets an http:// scheme.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&registered).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return registered, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	// the header and the body carry the same token; the header wins if both are set
	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		result.Token = token
	}
	if result.Token == "" {
		return models.AuthResult{}, errors.New("login response carries no token")
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("func", "httpServerAdapter.Login").Str("username", result.Username).Msg("logged in")

	return result, nil
}

func (h *httpServerAdapter) CreatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error) {
	var created models.Prompt

	resp, err := h.authedRequest(ctx).
		SetBody(prompt).
		SetResult(&created).
		Post("/api/prompt")
	if err != nil {
		return models.Prompt{}, fmt.Errorf("create prompt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Prompt{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) CreatePromptsBatch(ctx context.Context, prompts []models.Prompt) ([]models.BatchResult, error) {
	var batch models.BatchResponse

	resp, err := h.authedRequest(ctx).
		SetBody(prompts).
		SetResult(&batch).
		Post("/api/prompt/batch")
	if err != nil {
		return nil, fmt.Errorf("create prompts batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return batch.Results, nil
}

func (h *httpServerAdapter) ListPrompts(ctx context.Context) ([]models.Prompt, error) {
	var prompts []models.Prompt

	resp, err := h.authedRequest(ctx).
		SetResult(&prompts).
		Get("/api/prompt")
	if err != nil {
		return nil, fmt.Errorf("list prompts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return prompts, nil
}

func (h *httpServerAdapter) DeletePrompt(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/prompt/{id}")
	if err != nil {
		return fmt.Errorf("delete prompt request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
