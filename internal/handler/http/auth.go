package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/service"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/go-chi/chi/v5"
)

func setBearer(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid registration body")
		return
	}

	user, token, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "registration failed")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")

	setBearer(w, token)
	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid login body")
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	if result.OTPRequired {
		writeJSON(w, r, result, http.StatusAccepted)
		return
	}

	setBearer(w, result.Token)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) loginOTP(w http.ResponseWriter, r *http.Request) {
	var req models.LoginOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid login otp body")
		return
	}

	result, err := h.services.AuthService.LoginOTP(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "second login step failed")
		return
	}

	setBearer(w, result.Token)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), claims.UserID); err != nil {
		writeError(w, r, err, "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.LogoutAll(r.Context(), claims.UserID); err != nil {
		writeError(w, r, err, "logout of all sessions failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) requestOTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req models.OTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid otp request body")
		return
	}

	if err := h.services.AuthService.RequestOTP(r.Context(), claims.UserID, req); err != nil {
		writeError(w, r, err, "otp request failed")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req models.OTPVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid otp verify body")
		return
	}

	if err := h.services.AuthService.VerifyOTP(r.Context(), claims.UserID, req); err != nil {
		writeError(w, r, err, "otp verification failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setTwoFactor(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req models.TwoFactorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid two-factor body")
		return
	}

	if err := h.services.AuthService.SetTwoFactor(r.Context(), claims.UserID, req); err != nil {
		writeError(w, r, err, "two-factor update failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid change password body")
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), claims.UserID, req); err != nil {
		writeError(w, r, err, "password change failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestPasswordReset answers 202 whether or not the email is known.
// Only malformed input is reported.
func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid password reset body")
		return
	}

	err := h.services.AuthService.RequestPasswordReset(r.Context(), req)
	if errors.Is(err, service.ErrInvalidDataProvided) {
		writeError(w, r, err, "invalid password reset request")
		return
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("password reset request failed")
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid password reset confirmation body")
		return
	}

	if err := h.services.AuthService.ConfirmPasswordReset(r.Context(), req); err != nil {
		writeError(w, r, err, "password reset confirmation failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) quota(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	resource := models.Resource(chi.URLParam(r, "resource"))
	if !resource.Valid() {
		writeError(w, r, fmt.Errorf("%w: unknown resource %q", service.ErrInvalidDataProvided, resource), "quota of unknown resource")
		return
	}

	q, err := h.services.PermissionService.Quota(r.Context(), claims.UserID, claims.Role, resource)
	if err != nil {
		writeError(w, r, err, "quota lookup failed")
		return
	}

	writeJSON(w, r, q, http.StatusOK)
}
