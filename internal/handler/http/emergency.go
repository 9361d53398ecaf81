package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/go-chi/chi/v5"
)

// emergencyAccess serves the read-only profile behind the emergency gate.
// Every failure answers the same 401 body.
func (h *Handler) emergencyAccess(w http.ResponseWriter, r *http.Request) {
	userUUID := chi.URLParam(r, "userID")
	token := r.Header.Get(utils.HeaderEmergencyToken)

	profile, err := h.services.EmergencyService.Access(r.Context(), userUUID, token)
	if err != nil {
		writeError(w, r, err, "emergency access denied")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) issueEmergencyToken(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.services.EmergencyService.IssueToken(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err, "emergency token issue failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, resp, http.StatusCreated)
}

func (h *Handler) revokeEmergencyToken(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.EmergencyService.RevokeToken(r.Context(), claims.UserID); err != nil {
		writeError(w, r, err, "emergency token revocation failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) emergencyProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.EmergencyService.Profile(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err, "emergency profile lookup failed")
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) saveEmergencyProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SaveEmergencyProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid emergency profile body")
		return
	}

	profile, err := h.services.EmergencyService.SaveProfile(r.Context(), claims, req)
	if err != nil {
		writeError(w, r, err, "emergency profile save failed")
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}
