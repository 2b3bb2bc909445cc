// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listSecrets(w http.ResponseWriter, r *http.Request) {
	names, err := h.services.VaultService.ListSecretNames(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing secrets")
		return
	}

	utils.WriteJSON(w, models.SecretNamesResponse{Names: names}, http.StatusOK)
}

// createSecret stores a secret under the session's master key. A missing
// secret field asks the vault to generate one; the stored value is echoed
// back so it can be shown once.
func (h *Handler) createSecret(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, r, err, "no session in request context")
		return
	}

	var req models.CreateSecretRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	var created models.Secret
	err = h.services.SessionService.WithKey(ctx, id, func(key models.MasterKey) error {
		var createErr error
		created, createErr = h.services.VaultService.CreateSecret(ctx, key, req.Name, req.Secret)
		return createErr
	})
	if err != nil {
		writeError(w, r, err, "error creating secret")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) readSecret(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, r, err, "no session in request context")
		return
	}

	ctx := r.Context()
	name := secretName(r)

	var secret models.Secret
	err = h.services.SessionService.WithKey(ctx, id, func(key models.MasterKey) error {
		var readErr error
		secret, readErr = h.services.VaultService.ReadSecret(ctx, key, name)
		return readErr
	})
	if err != nil {
		writeError(w, r, err, "error reading secret")
		return
	}

	utils.WriteJSON(w, secret, http.StatusOK)
}

func (h *Handler) deleteSecret(w http.ResponseWriter, r *http.Request) {
	name := secretName(r)

	removed, err := h.services.VaultService.DeleteSecret(r.Context(), name)
	if err != nil {
		writeError(w, r, err, "error deleting secret")
		return
	}

	utils.WriteJSON(w, models.DeleteSecretResponse{Removed: removed}, http.StatusOK)
}

func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	password, err := h.services.VaultService.GeneratePassword(r.Context())
	if err != nil {
		writeError(w, r, err, "error generating password")
		return
	}

	utils.WriteJSON(w, models.GeneratedPasswordResponse{Secret: password}, http.StatusOK)
}

// secretName returns the {name} URL parameter. chi routes on the raw path
// when the request carries escaped characters such as %2F, so the parameter
// is unescaped in that case only.
func secretName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}
