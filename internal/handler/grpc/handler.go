package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Handler is the root gRPC transport handler. It implements [VaultServer]
// over the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Init builds the gRPC server with the vault service registered and the
// trace, logging and auth interceptors chained in that order.
func (h *Handler) Init(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.auth))
	server := grpc.NewServer(opts...)
	RegisterVaultServer(server, h)
	return server
}

func (h *Handler) Status(ctx context.Context, _ *Empty) (*models.VaultStatus, error) {
	initialized, err := h.services.VaultService.IsInitialized(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "error checking vault status")
	}
	return &models.VaultStatus{Initialized: initialized}, nil
}

func (h *Handler) SetMasterKey(ctx context.Context, in *models.MasterKeyRequest) (*Empty, error) {
	if err := h.services.VaultService.SetMasterKey(ctx, models.MasterKey(in.MasterKey)); err != nil {
		return nil, toStatus(ctx, err, "error setting master key")
	}

	logger.FromContext(ctx).Info().Msg("master key set")
	return &Empty{}, nil
}

// OpenSession sends the bearer token in the "authorization" response header,
// like the HTTP API does. The message only carries the expiry.
func (h *Handler) OpenSession(ctx context.Context, in *models.MasterKeyRequest) (*models.SessionToken, error) {
	token, err := h.services.SessionService.Open(ctx, models.MasterKey(in.MasterKey))
	if err != nil {
		return nil, toStatus(ctx, err, "error opening session")
	}

	header := metadata.Pairs(authorizationKey, fmt.Sprintf("Bearer %s", token.Token))
	if err = grpc.SetHeader(ctx, header); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.OpenSession").Msg("error setting response header")
	}

	return &token, nil
}

func (h *Handler) CloseSession(ctx context.Context, _ *Empty) (*Empty, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "no session in context")
	}

	if err = h.services.SessionService.Close(ctx, id); err != nil {
		return nil, toStatus(ctx, err, "error closing session")
	}
	return &Empty{}, nil
}

func (h *Handler) ListSecrets(ctx context.Context, _ *Empty) (*models.SecretNamesResponse, error) {
	names, err := h.services.VaultService.ListSecretNames(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "error listing secrets")
	}
	return &models.SecretNamesResponse{Names: names}, nil
}

func (h *Handler) CreateSecret(ctx context.Context, in *models.CreateSecretRequest) (*models.Secret, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "no session in context")
	}

	var created models.Secret
	err = h.services.SessionService.WithKey(ctx, id, func(key models.MasterKey) error {
		var createErr error
		created, createErr = h.services.VaultService.CreateSecret(ctx, key, in.Name, in.Secret)
		return createErr
	})
	if err != nil {
		return nil, toStatus(ctx, err, "error creating secret")
	}
	return &created, nil
}

func (h *Handler) ReadSecret(ctx context.Context, in *NameRequest) (*models.Secret, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "no session in context")
	}

	var secret models.Secret
	err = h.services.SessionService.WithKey(ctx, id, func(key models.MasterKey) error {
		var readErr error
		secret, readErr = h.services.VaultService.ReadSecret(ctx, key, in.Name)
		return readErr
	})
	if err != nil {
		return nil, toStatus(ctx, err, "error reading secret")
	}
	return &secret, nil
}

func (h *Handler) DeleteSecret(ctx context.Context, in *NameRequest) (*models.DeleteSecretResponse, error) {
	removed, err := h.services.VaultService.DeleteSecret(ctx, in.Name)
	if err != nil {
		return nil, toStatus(ctx, err, "error deleting secret")
	}
	return &models.DeleteSecretResponse{Removed: removed}, nil
}

func (h *Handler) GeneratePassword(ctx context.Context, _ *Empty) (*models.GeneratedPasswordResponse, error) {
	password, err := h.services.VaultService.GeneratePassword(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "error generating password")
	}
	return &models.GeneratedPasswordResponse{Secret: password}, nil
}
