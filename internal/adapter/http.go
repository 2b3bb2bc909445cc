package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the resty implementation of [ServerAdapter]
// for the daemon at cfg.HTTPAddress ("host:port" or a URL).
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) bearer() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) HasSession() bool {
	return h.bearer() != ""
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (h *httpServerAdapter) Status(ctx context.Context) (bool, error) {
	var status models.VaultStatus

	resp, err := h.client.R().SetContext(ctx).SetResult(&status).Get("/api/vault/status")
	if err != nil {
		return false, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return false, err
	}
	return status.Initialized, nil
}

func (h *httpServerAdapter) SetMasterKey(ctx context.Context, key models.MasterKey) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MasterKeyRequest{MasterKey: key.Reveal()}).
		Post("/api/vault/master")
	if err != nil {
		return fmt.Errorf("set master key request: %w", err)
	}
	return mapHTTPError(resp, "")
}

// OpenSession posts the key and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) OpenSession(ctx context.Context, key models.MasterKey) (models.SessionToken, error) {
	var token models.SessionToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MasterKeyRequest{MasterKey: key.Reveal()}).
		SetResult(&token).
		Post("/api/session")
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("open session request: %w", err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return models.SessionToken{}, err
	}

	bearer, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	h.setToken(bearer)
	token.Token = bearer
	return token, nil
}

func (h *httpServerAdapter) CloseSession(ctx context.Context) error {
	if !h.HasSession() {
		return nil
	}

	resp, err := h.authedRequest(ctx).Delete("/api/session")
	h.setToken("")
	if err != nil {
		return fmt.Errorf("close session request: %w", err)
	}
	return mapHTTPError(resp, "")
}

func (h *httpServerAdapter) ListSecrets(ctx context.Context) ([]string, error) {
	var list models.SecretNamesResponse

	resp, err := h.authedRequest(ctx).SetResult(&list).Get("/api/secrets")
	if err != nil {
		return nil, fmt.Errorf("list secrets request: %w", err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return nil, err
	}
	return list.Names, nil
}

func (h *httpServerAdapter) CreateSecret(ctx context.Context, name string, secret *string) (models.Secret, error) {
	var created models.Secret

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateSecretRequest{Name: name, Secret: secret}).
		SetResult(&created).
		Post("/api/secrets")
	if err != nil {
		return models.Secret{}, fmt.Errorf("create secret request: %w", err)
	}
	if err = mapHTTPError(resp, name); err != nil {
		return models.Secret{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) ReadSecret(ctx context.Context, name string) (models.Secret, error) {
	var secret models.Secret

	resp, err := h.authedRequest(ctx).
		SetPathParam("name", name).
		SetResult(&secret).
		Get("/api/secrets/{name}")
	if err != nil {
		return models.Secret{}, fmt.Errorf("read secret request: %w", err)
	}
	if err = mapHTTPError(resp, name); err != nil {
		return models.Secret{}, err
	}

	secret.Raw = []byte(secret.Value)
	return secret, nil
}

func (h *httpServerAdapter) DeleteSecret(ctx context.Context, name string) (int64, error) {
	var deleted models.DeleteSecretResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("name", name).
		SetResult(&deleted).
		Delete("/api/secrets/{name}")
	if err != nil {
		return 0, fmt.Errorf("delete secret request: %w", err)
	}
	if err = mapHTTPError(resp, name); err != nil {
		return 0, err
	}
	return deleted.Removed, nil
}

func (h *httpServerAdapter) GeneratePassword(ctx context.Context) (string, error) {
	var generated models.GeneratedPasswordResponse

	resp, err := h.authedRequest(ctx).SetResult(&generated).Get("/api/generate")
	if err != nil {
		return "", fmt.Errorf("generate password request: %w", err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return "", err
	}
	return generated.Secret, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.bearer(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
