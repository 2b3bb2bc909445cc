package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type testClient struct {
	vault    *mock.MockVaultService
	sessions *mock.MockSessionService
	conn     *grpc.ClientConn
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	ctrl := gomock.NewController(t)

	tc := &testClient{
		vault:    mock.NewMockVaultService(ctrl),
		sessions: mock.NewMockSessionService(ctrl),
	}
	services := &service.Services{
		VaultService:   tc.vault,
		SessionService: tc.sessions,
		AppInfoService: mock.NewMockAppInfoService(ctrl),
	}

	listener := bufconn.Listen(1 << 20)
	server := NewHandler(services, logger.Nop()).Init()
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	tc.conn = conn
	return tc
}

func authorized(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, authorizationKey, "Bearer tok")
}

func (tc *testClient) expectSession() {
	tc.sessions.EXPECT().Resolve(gomock.Any(), "tok").Return(models.Session{ID: "s1"}, nil)
}

func TestStatus(t *testing.T) {
	tc := newTestClient(t)
	tc.vault.EXPECT().IsInitialized(gomock.Any()).Return(false, nil)

	var out models.VaultStatus
	var header metadata.MD
	err := tc.conn.Invoke(context.Background(), MethodStatus, &Empty{}, &out, grpc.Header(&header))

	require.NoError(t, err)
	assert.False(t, out.Initialized)
	assert.NotEmpty(t, header.Get(traceIDKey))
}

func TestSetMasterKey_AlreadyInitialized(t *testing.T) {
	tc := newTestClient(t)
	tc.vault.EXPECT().SetMasterKey(gomock.Any(), models.MasterKey("hunter2")).Return(service.ErrAlreadyInitialized)

	err := tc.conn.Invoke(context.Background(), MethodSetMasterKey, &models.MasterKeyRequest{MasterKey: "hunter2"}, &Empty{})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.AlreadyExists, st.Code())
	assert.Contains(t, st.Message(), "already been set")
}

func TestOpenSession_TokenInHeader(t *testing.T) {
	tc := newTestClient(t)
	tc.sessions.EXPECT().Open(gomock.Any(), models.MasterKey("hunter2")).Return(models.SessionToken{Token: "jwt"}, nil)

	var out models.SessionToken
	var header metadata.MD
	err := tc.conn.Invoke(context.Background(), MethodOpenSession, &models.MasterKeyRequest{MasterKey: "hunter2"}, &out, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer jwt"}, header.Get(authorizationKey))
	assert.Empty(t, out.Token)
}

func TestAuthRequired(t *testing.T) {
	tc := newTestClient(t)

	err := tc.conn.Invoke(context.Background(), MethodListSecrets, &Empty{}, &models.SecretNamesResponse{})

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_ExpiredSession(t *testing.T) {
	tc := newTestClient(t)
	tc.sessions.EXPECT().Resolve(gomock.Any(), "tok").Return(models.Session{}, service.ErrSessionExpired)

	err := tc.conn.Invoke(authorized(context.Background()), MethodListSecrets, &Empty{}, &models.SecretNamesResponse{})

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestListSecrets(t *testing.T) {
	tc := newTestClient(t)
	tc.expectSession()
	tc.vault.EXPECT().ListSecretNames(gomock.Any()).Return([]string{"bank", "email"}, nil)

	var out models.SecretNamesResponse
	err := tc.conn.Invoke(authorized(context.Background()), MethodListSecrets, &Empty{}, &out)

	require.NoError(t, err)
	assert.Equal(t, []string{"bank", "email"}, out.Names)
}

func TestCreateAndReadSecret(t *testing.T) {
	tc := newTestClient(t)
	tc.sessions.EXPECT().Resolve(gomock.Any(), "tok").Return(models.Session{ID: "s1"}, nil).Times(2)
	tc.sessions.EXPECT().WithKey(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn func(models.MasterKey) error) error {
			return fn("hunter2")
		}).Times(2)

	secret := "p@ssw0rd!"
	tc.vault.EXPECT().CreateSecret(gomock.Any(), models.MasterKey("hunter2"), "email", gomock.Any()).
		Return(models.Secret{Name: "email", Value: secret}, nil)
	tc.vault.EXPECT().ReadSecret(gomock.Any(), models.MasterKey("hunter2"), "email").
		Return(models.Secret{Name: "email", Value: secret}, nil)

	ctx := authorized(context.Background())

	var created models.Secret
	require.NoError(t, tc.conn.Invoke(ctx, MethodCreateSecret, &models.CreateSecretRequest{Name: "email", Secret: &secret}, &created))
	assert.Equal(t, "email", created.Name)

	var read models.Secret
	require.NoError(t, tc.conn.Invoke(ctx, MethodReadSecret, &NameRequest{Name: "email"}, &read))
	assert.Equal(t, secret, read.Value)
}

func TestReadSecret_NotFound(t *testing.T) {
	tc := newTestClient(t)
	tc.expectSession()
	tc.sessions.EXPECT().WithKey(gomock.Any(), "s1", gomock.Any()).Return(&service.SecretNotFoundError{Name: "github"})

	err := tc.conn.Invoke(authorized(context.Background()), MethodReadSecret, &NameRequest{Name: "github"}, &models.Secret{})

	st, _ := status.FromError(err)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Contains(t, st.Message(), "github")
}

func TestDeleteSecretAndCloseSession(t *testing.T) {
	tc := newTestClient(t)
	tc.sessions.EXPECT().Resolve(gomock.Any(), "tok").Return(models.Session{ID: "s1"}, nil).Times(2)
	tc.vault.EXPECT().DeleteSecret(gomock.Any(), "email").Return(int64(1), nil)
	tc.sessions.EXPECT().Close(gomock.Any(), "s1").Return(nil)

	ctx := authorized(context.Background())

	var deleted models.DeleteSecretResponse
	require.NoError(t, tc.conn.Invoke(ctx, MethodDeleteSecret, &NameRequest{Name: "email"}, &deleted))
	assert.Equal(t, int64(1), deleted.Removed)

	require.NoError(t, tc.conn.Invoke(ctx, MethodCloseSession, &Empty{}, &Empty{}))
}

func TestGeneratePassword(t *testing.T) {
	tc := newTestClient(t)
	tc.expectSession()
	tc.vault.EXPECT().GeneratePassword(gomock.Any()).Return("Zq8#kLm2!xYp4@Wn", nil)

	var out models.GeneratedPasswordResponse
	require.NoError(t, tc.conn.Invoke(authorized(context.Background()), MethodGeneratePassword, &Empty{}, &out))
	assert.Equal(t, "Zq8#kLm2!xYp4@Wn", out.Secret)
}

func TestCodeFromError(t *testing.T) {
	assert.Equal(t, codes.FailedPrecondition, codeFromError(service.ErrUninitialized))
	assert.Equal(t, codes.InvalidArgument, codeFromError(service.ErrSecretTooLong))
	assert.Equal(t, codes.Internal, codeFromError(assert.AnError))
}
