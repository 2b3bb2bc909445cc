package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const testToken = "test-token"

type testServer struct {
	vault    *mock.MockVaultService
	sessions *mock.MockSessionService
	appInfo  *mock.MockAppInfoService
	handler  http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		vault:    mock.NewMockVaultService(ctrl),
		sessions: mock.NewMockSessionService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		VaultService:   ts.vault,
		SessionService: ts.sessions,
		AppInfoService: ts.appInfo,
	}
	ts.handler = NewHandler(services, logger.Nop()).Init()
	return ts
}

// expectSession makes testToken resolve to session "s1".
func (ts *testServer) expectSession() {
	ts.sessions.EXPECT().Resolve(gomock.Any(), testToken).Return(models.Session{ID: "s1"}, nil)
}

// expectKey runs the WithKey callback with key for session "s1".
func (ts *testServer) expectKey(key models.MasterKey) {
	ts.sessions.EXPECT().WithKey(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, fn func(models.MasterKey) error) error {
			return fn(key)
		})
}

func (ts *testServer) do(method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestGetServerVersion(t *testing.T) {
	ts := newTestServer(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := ts.do(http.MethodGet, "/api/version", "", false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestGetVaultStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.vault.EXPECT().IsInitialized(gomock.Any()).Return(true, nil)

	rr := ts.do(http.MethodGet, "/api/vault/status", "", false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"initialized":true}`, rr.Body.String())
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestSetMasterKey(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(ts *testServer)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"master_key":"hunter2"}`,
			setup: func(ts *testServer) {
				ts.vault.EXPECT().SetMasterKey(gomock.Any(), models.MasterKey("hunter2")).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "already set",
			body: `{"master_key":"hunter2"}`,
			setup: func(ts *testServer) {
				ts.vault.EXPECT().SetMasterKey(gomock.Any(), gomock.Any()).Return(service.ErrAlreadyInitialized)
			},
			wantStatus: http.StatusConflict,
			wantBody:   "The master key has already been set.",
		},
		{
			name: "too long",
			body: `{"master_key":"0123456789abcdef0123456789abcdef!"}`,
			setup: func(ts *testServer) {
				ts.vault.EXPECT().SetMasterKey(gomock.Any(), gomock.Any()).Return(service.ErrKeyTooLong)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON",
			body:       `{"master_key":`,
			setup:      func(*testServer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided",
		},
		{
			name:       "body too large",
			body:       `{"master_key":"` + strings.Repeat("a", maxRequestBodySize) + `"}`,
			setup:      func(*testServer) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			tt.setup(ts)

			rr := ts.do(http.MethodPost, "/api/vault/master", tt.body, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOpenSession(t *testing.T) {
	ts := newTestServer(t)
	ts.sessions.EXPECT().Open(gomock.Any(), models.MasterKey("hunter2")).
		Return(models.SessionToken{Token: "jwt"}, nil)

	rr := ts.do(http.MethodPost, "/api/session", `{"master_key":"hunter2"}`, false)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer jwt", rr.Header().Get("Authorization"))
	assert.NotContains(t, rr.Body.String(), "jwt")
}

func TestOpenSession_WrongKey(t *testing.T) {
	ts := newTestServer(t)
	ts.sessions.EXPECT().Open(gomock.Any(), gomock.Any()).Return(models.SessionToken{}, service.ErrIncorrectKey)

	rr := ts.do(http.MethodPost, "/api/session", `{"master_key":"nope"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "The password is incorrect.\n", rr.Body.String())
}

func TestCloseSession(t *testing.T) {
	ts := newTestServer(t)
	ts.expectSession()
	ts.sessions.EXPECT().Close(gomock.Any(), "s1").Return(nil)

	rr := ts.do(http.MethodDelete, "/api/session", "", true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		resolveErr error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + testToken, resolveErr: service.ErrSessionExpired, wantStatus: http.StatusUnauthorized},
		{name: "unknown", header: "Bearer " + testToken, resolveErr: service.ErrSessionNotFound, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.resolveErr != nil {
				ts.sessions.EXPECT().Resolve(gomock.Any(), testToken).Return(models.Session{}, tt.resolveErr)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/secrets", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			ts.handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestListSecrets(t *testing.T) {
	ts := newTestServer(t)
	ts.expectSession()
	ts.vault.EXPECT().ListSecretNames(gomock.Any()).Return([]string{"bank", "email"}, nil)

	rr := ts.do(http.MethodGet, "/api/secrets", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"names":["bank","email"]}`, rr.Body.String())
}

func TestCreateSecret(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		ts := newTestServer(t)
		ts.expectSession()
		ts.expectKey("hunter2")
		ts.vault.EXPECT().CreateSecret(gomock.Any(), models.MasterKey("hunter2"), "email", gomock.Any()).DoAndReturn(
			func(_ any, _ models.MasterKey, name string, plaintext *string) (models.Secret, error) {
				require.NotNil(t, plaintext)
				return models.Secret{Name: name, Value: *plaintext}, nil
			})

		rr := ts.do(http.MethodPost, "/api/secrets", `{"name":"email","secret":"p@ssw0rd!"}`, true)

		require.Equal(t, http.StatusCreated, rr.Code)
		var got models.Secret
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "email", got.Name)
		assert.Equal(t, "p@ssw0rd!", got.Value)
	})

	t.Run("generated", func(t *testing.T) {
		ts := newTestServer(t)
		ts.expectSession()
		ts.expectKey("hunter2")
		ts.vault.EXPECT().CreateSecret(gomock.Any(), gomock.Any(), "bank", gomock.Nil()).
			Return(models.Secret{Name: "bank", Value: "Zq8#kLm2!xYp4@Wn", Generated: true}, nil)

		rr := ts.do(http.MethodPost, "/api/secrets", `{"name":"bank"}`, true)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"generated":true`)
	})

	t.Run("duplicate", func(t *testing.T) {
		ts := newTestServer(t)
		ts.expectSession()
		ts.expectKey("hunter2")
		ts.vault.EXPECT().CreateSecret(gomock.Any(), gomock.Any(), "email", gomock.Any()).
			Return(models.Secret{}, service.ErrNameAlreadyExists)

		rr := ts.do(http.MethodPost, "/api/secrets", `{"name":"email","secret":"x"}`, true)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestReadSecret(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.expectSession()
		ts.expectKey("hunter2")
		ts.vault.EXPECT().ReadSecret(gomock.Any(), models.MasterKey("hunter2"), "email").
			Return(models.Secret{Name: "email", Value: "p@ssw0rd!", Raw: []byte("p@ssw0rd!")}, nil)

		rr := ts.do(http.MethodGet, "/api/secrets/email", "", true)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"secret":"p@ssw0rd!"`)
	})

	t.Run("not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.expectSession()
		ts.expectKey("hunter2")
		ts.vault.EXPECT().ReadSecret(gomock.Any(), gomock.Any(), "github").
			Return(models.Secret{}, &service.SecretNotFoundError{Name: "github"})

		rr := ts.do(http.MethodGet, "/api/secrets/github", "", true)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "github")
	})

	t.Run("session closed meanwhile", func(t *testing.T) {
		ts := newTestServer(t)
		ts.expectSession()
		ts.sessions.EXPECT().WithKey(gomock.Any(), "s1", gomock.Any()).Return(service.ErrSessionNotFound)

		rr := ts.do(http.MethodGet, "/api/secrets/email", "", true)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestDeleteSecret(t *testing.T) {
	ts := newTestServer(t)
	ts.expectSession()
	ts.vault.EXPECT().DeleteSecret(gomock.Any(), "email").Return(int64(2), nil)

	rr := ts.do(http.MethodDelete, "/api/secrets/email", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"removed":2}`, rr.Body.String())
}

func TestGeneratePassword(t *testing.T) {
	ts := newTestServer(t)
	ts.expectSession()
	ts.vault.EXPECT().GeneratePassword(gomock.Any()).Return("Zq8#kLm2!xYp4@Wn", nil)

	rr := ts.do(http.MethodGet, "/api/generate", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"secret":"Zq8#kLm2!xYp4@Wn"}`, rr.Body.String())
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"incorrect key", service.ErrIncorrectKey, http.StatusUnauthorized},
		{"malformed verifier", errors.Join(service.ErrIncorrectKey, service.ErrMalformedVerifier), http.StatusUnauthorized},
		{"invalid name", service.ErrInvalidSecretName, http.StatusBadRequest},
		{"uninitialized", service.ErrUninitialized, http.StatusPreconditionFailed},
		{"storage", errors.Join(service.ErrStorage, errors.New("disk full")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestSecretName_Unescaped(t *testing.T) {
	ts := newTestServer(t)
	ts.expectSession()
	ts.vault.EXPECT().DeleteSecret(gomock.Any(), "my bank/card").Return(int64(1), nil)

	rr := ts.do(http.MethodDelete, "/api/secrets/my%20bank%2Fcard", "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
}
