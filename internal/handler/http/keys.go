package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/models"
)

func (h *Handler) rotateKey(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req models.RotateKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid rotate key body")
		return
	}

	key, err := h.services.KeyService.Rotate(r.Context(), claims.UserID, req.Password)
	if err != nil {
		writeError(w, r, err, "key rotation failed")
		return
	}

	logger.FromRequest(r).Info().Int64("key_id", key.ID).Msg("key rotated")
	writeJSON(w, r, key, http.StatusOK)
}

func (h *Handler) signPayload(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid sign body")
		return
	}

	resp, err := h.services.KeyService.Sign(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, r, err, "signing failed")
		return
	}

	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) ownPublicKey(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	key, err := h.services.KeyService.PublicKey(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err, "public key lookup failed")
		return
	}

	writeJSON(w, r, models.PublicKeyResponse{
		UserUUID:  claims.UUID,
		KeyID:     key.ID,
		PublicKey: key.PublicKey,
		Algorithm: key.Algorithm,
	}, http.StatusOK)
}
