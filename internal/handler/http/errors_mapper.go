package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-identity-vault/internal/app"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/service"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched in order; the first target found in the chain
// wins. An empty message means the target's own text is sent.
var errorStatuses = []errorStatus{
	// wrong password and lockout are indistinguishable to the caller
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: app.MsgInvalidCredentials},
	{target: service.ErrAccountLocked, status: http.StatusUnauthorized, message: app.MsgInvalidCredentials},
	{target: service.ErrInvalidOrExpiredToken, status: http.StatusUnauthorized},
	{target: service.ErrInvalidOrExpiredOTP, status: http.StatusUnauthorized},
	{target: service.ErrInvalidEmergencyToken, status: http.StatusUnauthorized, message: app.MsgUnauthorized},

	{target: service.ErrPartnerAuthRequired, status: http.StatusUnauthorized},
	{target: service.ErrInvalidPartnerOrSignature, status: http.StatusUnauthorized, message: app.MsgUnauthorized},
	{target: service.ErrTimestampExpired, status: http.StatusUnauthorized, message: app.MsgUnauthorized},

	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, message: app.MsgUnauthorized},
	{target: utils.ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, message: app.MsgUnauthorized},
	{target: ErrMissingClaims, status: http.StatusUnauthorized, message: app.MsgUnauthorized},
	{target: ErrMissingPartner, status: http.StatusUnauthorized, message: app.MsgUnauthorized},

	{target: service.ErrInsufficientPermissions, status: http.StatusForbidden},
	{target: service.ErrQuotaExceeded, status: http.StatusForbidden},

	{target: service.ErrResourceNotFound, status: http.StatusNotFound},
	{target: service.ErrAlreadyExists, status: http.StatusConflict},
	{target: ErrRateLimited, status: http.StatusTooManyRequests},

	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: service.ErrVersionIsNotSpecified, status: http.StatusBadRequest},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrUnreadableBody, status: http.StatusBadRequest},
	{target: ErrInvalidPathParameter, status: http.StatusBadRequest},

	{target: service.ErrOTPDeliveryFailed, status: http.StatusBadGateway},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.message != "" {
				return e.status, e.message
			}
			return e.status, e.target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request logger and answers with the mapped
// status. Internal details never reach the response body.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status, public := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, public, status)
}
