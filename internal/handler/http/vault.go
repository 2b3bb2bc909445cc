package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) getVaultStatus(w http.ResponseWriter, r *http.Request) {
	initialized, err := h.services.VaultService.IsInitialized(r.Context())
	if err != nil {
		writeError(w, r, err, "error checking vault status")
		return
	}

	utils.WriteJSON(w, models.VaultStatus{Initialized: initialized}, http.StatusOK)
}

func (h *Handler) setMasterKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.MasterKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.VaultService.SetMasterKey(r.Context(), models.MasterKey(req.MasterKey)); err != nil {
		writeError(w, r, err, "error setting master key")
		return
	}

	log.Info().Msg("master key set")
	w.WriteHeader(http.StatusCreated)
}

// decodeJSON reads a bounded JSON body into v. On failure it answers 400
// and returns false. Bodies are never logged: they carry keys and secrets.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}
