package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
	maxTraceIDLength = 64
)

// publicMethods can be called without a session.
var publicMethods = map[string]bool{
	MethodStatus:       true,
	MethodSetMasterKey: true,
	MethodOpenSession:  true,
}

func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstMetadata(ctx, traceIDKey)
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))
	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// auth resolves the bearer token in the "authorization" metadata for every
// method outside publicMethods and stores the session ID in the context.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return next(ctx, req)
	}

	log := logger.FromContext(ctx)

	header := firstMetadata(ctx, authorizationKey)
	if header == "" {
		log.Warn().Str("method", info.FullMethod).Msg("missing authorization metadata")
		return nil, status.Error(codes.Unauthenticated, app.MsgSessionNotFound)
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		log.Warn().Err(err).Str("method", info.FullMethod).Msg("invalid authorization metadata")
		return nil, status.Error(codes.Unauthenticated, app.MsgSessionNotFound)
	}

	session, err := h.services.SessionService.Resolve(ctx, token)
	if err != nil {
		return nil, toStatus(ctx, err, "session rejected")
	}

	return next(context.WithValue(ctx, utils.SessionIDCtxKey, session.ID), req)
}

func sessionID(ctx context.Context) (string, error) {
	id, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		return "", service.ErrSessionNotFound
	}
	return id, nil
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

