package http

import (
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.realIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/login/otp", h.loginOTP)
		r.Post("/api/user/password/reset", h.requestPasswordReset)
		r.Post("/api/user/password/reset/confirm", h.confirmPasswordReset)
	})

	// emergency gate: token in x-emergency-token, throttled
	router.With(h.emergencyRateLimit).Get("/api/emergency/{userID}", h.emergencyAccess)

	// routes with session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)
		r.Post("/api/user/logout-all", h.logoutAll)
		r.Post("/api/user/otp/request", h.requestOTP)
		r.Post("/api/user/otp/verify", h.verifyOTP)
		r.Put("/api/user/2fa", h.setTwoFactor)
		r.Put("/api/user/password", h.changePassword)
		r.Get("/api/user/quota/{resource}", h.quota)

		keysRead := h.requirePermission(models.ResourceKeys, models.PermissionRead)
		keysWrite := h.requirePermission(models.ResourceKeys, models.PermissionWrite)
		r.With(keysRead).Get("/api/user/keys/public", h.ownPublicKey)
		r.With(keysWrite).Post("/api/user/keys/rotate", h.rotateKey)
		r.With(keysWrite).Post("/api/user/keys/sign", h.signPayload)

		grantsRead := h.requirePermission(models.ResourceServiceAuthorizations, models.PermissionRead)
		grantsWrite := h.requirePermission(models.ResourceServiceAuthorizations, models.PermissionWrite)
		r.With(grantsRead).Get("/api/user/services/authorizations", h.listAuthorizations)
		r.With(grantsWrite).Post("/api/user/services/{serviceID}/authorizations", h.authorizeService)
		r.With(grantsWrite).Delete("/api/user/services/{serviceID}/authorizations", h.revokeService)

		emergencyRead := h.requirePermission(models.ResourceEmergencyProfile, models.PermissionRead)
		emergencyWrite := h.requirePermission(models.ResourceEmergencyProfile, models.PermissionWrite)
		r.With(emergencyWrite).Post("/api/user/emergency/token", h.issueEmergencyToken)
		r.With(emergencyWrite).Delete("/api/user/emergency/token", h.revokeEmergencyToken)
		r.With(emergencyRead).Get("/api/user/emergency/profile", h.emergencyProfile)
		r.With(emergencyWrite).Put("/api/user/emergency/profile", h.saveEmergencyProfile)
	})

	// administration
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requirePermission(models.ResourcePartners, models.PermissionAdmin))

		r.Post("/api/admin/partners", h.createPartner)
		r.Put("/api/admin/partners/{partnerID}/status", h.updatePartnerStatus)
		r.Post("/api/admin/partners/{partnerID}/services", h.createPartnerService)
	})

	// signed partner requests
	router.Group(func(r chi.Router) {
		r.Use(h.partnerAuth)

		r.Post("/api/partner/verify-identity", h.verifyIdentity)
		r.Post("/api/partner/check-authorization", h.checkAuthorization)
		r.Get("/api/partner/users/{uuid}/public-key", h.partnerPublicKey)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
