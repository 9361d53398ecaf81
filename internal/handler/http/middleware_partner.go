package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/rs/zerolog"
)

// maxPartnerBodySize caps the body read for signature verification.
const maxPartnerBodySize = 1 << 20

// partnerAuth verifies the HMAC signature of a partner request.
//
// The raw body is read once, handed to [service.PartnerService.Authenticate]
// together with the x-api-key, x-signature and x-timestamp headers, the
// method and the path, and then restored so that the handler can decode it.
// On success the partner is stored with [utils.WithPartner].
func (h *Handler) partnerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxPartnerBodySize))
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrUnreadableBody, err), "failed to read partner request body")
			return
		}
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		ctx := r.Context()
		partner, err := h.services.PartnerService.Authenticate(ctx, models.PartnerAuthRequest{
			APIKey:    r.Header.Get(utils.HeaderAPIKey),
			Signature: r.Header.Get(utils.HeaderSignature),
			Timestamp: r.Header.Get(utils.HeaderTimestamp),
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      body,
		})
		if err != nil {
			writeError(w, r, err, "partner authentication failed")
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("partner_id", partner.ID)
		})
		ctx = utils.WithPartner(l.WithContext(ctx), &partner)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// partnerFromRequest returns the authenticated partner or writes 401.
func partnerFromRequest(w http.ResponseWriter, r *http.Request) (models.GovernmentPartner, bool) {
	partner, ok := utils.GetPartnerFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingPartner, "handler reached without partner")
		return models.GovernmentPartner{}, false
	}
	return *partner, true
}
