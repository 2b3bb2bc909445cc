package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// auth is an HTTP middleware that requires an open session.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// via [service.SessionService.Resolve] and stores the session ID in the
// request context under [utils.SessionIDCtxKey]. Requests without a valid,
// unexpired session are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgSessionNotFound, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(errors.Join(ErrInvalidAuthorizationHeader, err)).Send()
			http.Error(w, app.MsgSessionNotFound, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Resolve(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "session rejected")
			return
		}

		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, session.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID returns the session stored by auth. Handlers behind auth can
// rely on it being present.
func sessionID(r *http.Request) (string, error) {
	id, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		return "", service.ErrSessionNotFound
	}
	return id, nil
}
