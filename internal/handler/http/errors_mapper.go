package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// errorStatuses is checked in order: an error wrapping several sentinels
// gets the status of the first one listed.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrIncorrectKey, http.StatusUnauthorized},
	{service.ErrSessionExpired, http.StatusUnauthorized},
	{service.ErrSessionNotFound, http.StatusUnauthorized},
	{service.ErrInvalidSecretName, http.StatusBadRequest},
	{service.ErrSecretTooLong, http.StatusBadRequest},
	{service.ErrKeyTooLong, http.StatusBadRequest},
	{service.ErrSecretNotFound, http.StatusNotFound},
	{service.ErrNameAlreadyExists, http.StatusConflict},
	{service.ErrAlreadyInitialized, http.StatusConflict},
	{service.ErrUninitialized, http.StatusPreconditionFailed},
	{service.ErrStorage, http.StatusInternalServerError},
	{service.ErrEncoding, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its status and one-line message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Msg(msg)
	}

	http.Error(w, app.MessageFor(err), status)
}
