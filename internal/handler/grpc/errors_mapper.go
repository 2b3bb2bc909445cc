package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// errorCodes is checked in order, mirroring the HTTP status table.
var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{service.ErrIncorrectKey, codes.Unauthenticated},
	{service.ErrSessionExpired, codes.Unauthenticated},
	{service.ErrSessionNotFound, codes.Unauthenticated},
	{service.ErrInvalidSecretName, codes.InvalidArgument},
	{service.ErrSecretTooLong, codes.InvalidArgument},
	{service.ErrKeyTooLong, codes.InvalidArgument},
	{service.ErrSecretNotFound, codes.NotFound},
	{service.ErrNameAlreadyExists, codes.AlreadyExists},
	{service.ErrAlreadyInitialized, codes.AlreadyExists},
	{service.ErrUninitialized, codes.FailedPrecondition},
	{service.ErrStorage, codes.Internal},
	{service.ErrEncoding, codes.Internal},
}

func codeFromError(err error) codes.Code {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return codes.Internal
}

// toStatus logs err and converts it to a status carrying the user message.
func toStatus(ctx context.Context, err error, msg string) error {
	code := codeFromError(err)

	log := logger.FromContext(ctx)
	if code == codes.Internal {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Msg(msg)
	}

	return status.Error(code, app.MessageFor(err))
}
