package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// openSession verifies the master key and opens a session. The token is
// returned in the Authorization header, the body only carries its expiry.
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	var req models.MasterKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.services.SessionService.Open(r.Context(), models.MasterKey(req.MasterKey))
	if err != nil {
		writeError(w, r, err, "error opening session")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.Token))
	utils.WriteJSON(w, token, http.StatusCreated)
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, r, err, "no session in request context")
		return
	}

	if err = h.services.SessionService.Close(r.Context(), id); err != nil {
		writeError(w, r, err, "error closing session")
		return
	}

	logger.FromRequest(r).Info().Str("session_id", id).Msg("session closed by client")
	w.WriteHeader(http.StatusNoContent)
}
