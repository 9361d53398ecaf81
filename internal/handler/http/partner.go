// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/go-chi/chi/v5"
)

// ---------------------------------------------------------------------------
// Partner-facing endpoints (signed requests)
// ---------------------------------------------------------------------------

func (h *Handler) verifyIdentity(w http.ResponseWriter, r *http.Request) {
	partner, ok := partnerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.VerifyIdentityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid verify identity body")
		return
	}

	resp, err := h.services.PartnerService.VerifyIdentity(r.Context(), partner, req.UserUUID)
	if err != nil {
		writeError(w, r, err, "identity verification failed")
		return
	}

	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) checkAuthorization(w http.ResponseWriter, r *http.Request) {
	partner, ok := partnerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CheckAuthorizationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid check authorization body")
		return
	}

	check, err := h.services.PartnerService.CheckAuthorization(r.Context(), partner, req)
	if err != nil {
		writeError(w, r, err, "authorization check failed")
		return
	}

	writeJSON(w, r, check, http.StatusOK)
}

func (h *Handler) partnerPublicKey(w http.ResponseWriter, r *http.Request) {
	partner, ok := partnerFromRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.services.PartnerService.PublicKey(r.Context(), partner, chi.URLParam(r, "uuid"))
	if err != nil {
		writeError(w, r, err, "public key lookup failed")
		return
	}

	writeJSON(w, r, resp, http.StatusOK)
}

// ---------------------------------------------------------------------------
// User grants
// ---------------------------------------------------------------------------

func (h *Handler) authorizeService(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	serviceID, err := int64Param(r, "serviceID")
	if err != nil {
		writeError(w, r, err, "invalid service id")
		return
	}

	var req models.AuthorizeServiceRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid authorization body")
		return
	}

	grant, err := h.services.PartnerService.Authorize(r.Context(), claims, serviceID, req)
	if err != nil {
		writeError(w, r, err, "service authorization failed")
		return
	}

	writeJSON(w, r, grant, http.StatusCreated)
}

func (h *Handler) revokeService(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	serviceID, err := int64Param(r, "serviceID")
	if err != nil {
		writeError(w, r, err, "invalid service id")
		return
	}

	if err = h.services.PartnerService.Revoke(r.Context(), claims.UserID, serviceID); err != nil {
		writeError(w, r, err, "service revocation failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAuthorizations(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	grants, err := h.services.PartnerService.ListAuthorizations(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err, "listing authorizations failed")
		return
	}
	if grants == nil {
		grants = []models.UserServiceAuthorization{}
	}

	writeJSON(w, r, grants, http.StatusOK)
}

// ---------------------------------------------------------------------------
// Administration
// ---------------------------------------------------------------------------

func (h *Handler) createPartner(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartnerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid create partner body")
		return
	}

	// the only response that ever carries the api secret
	partner, err := h.services.PartnerService.CreatePartner(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "partner creation failed")
		return
	}

	writeJSON(w, r, partner, http.StatusCreated)
}

func (h *Handler) updatePartnerStatus(w http.ResponseWriter, r *http.Request) {
	partnerID, err := int64Param(r, "partnerID")
	if err != nil {
		writeError(w, r, err, "invalid partner id")
		return
	}

	var req models.PartnerStatusRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid partner status body")
		return
	}

	partner, err := h.services.PartnerService.UpdateStatus(r.Context(), partnerID, req.Status)
	if err != nil {
		writeError(w, r, err, "partner status update failed")
		return
	}

	writeJSON(w, r, partner, http.StatusOK)
}

func (h *Handler) createPartnerService(w http.ResponseWriter, r *http.Request) {
	partnerID, err := int64Param(r, "partnerID")
	if err != nil {
		writeError(w, r, err, "invalid partner id")
		return
	}

	var req models.CreateServiceRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid create service body")
		return
	}

	svc, err := h.services.PartnerService.CreateService(r.Context(), partnerID, req)
	if err != nil {
		writeError(w, r, err, "partner service creation failed")
		return
	}

	writeJSON(w, r, svc, http.StatusCreated)
}
