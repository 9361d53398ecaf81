package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/service"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/models"
)

const testUserUUID = "0190f5a4-3b7e-7c1a-9d2e-5f6a7b8c9d0e"

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

type mockAuthService struct {
	registerFn             func(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	loginFn                func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	loginOTPFn             func(ctx context.Context, req models.LoginOTPRequest) (models.LoginResult, error)
	logoutAllFn            func(ctx context.Context, userID int64) error
	requestPasswordResetFn func(ctx context.Context, req models.PasswordResetRequest) error
	changePasswordFn       func(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) LoginOTP(ctx context.Context, req models.LoginOTPRequest) (models.LoginResult, error) {
	return m.loginOTPFn(ctx, req)
}

func (m *mockAuthService) Logout(context.Context, int64) error { return nil }

func (m *mockAuthService) LogoutAll(ctx context.Context, userID int64) error {
	return m.logoutAllFn(ctx, userID)
}

func (m *mockAuthService) RequestOTP(context.Context, int64, models.OTPRequest) error { return nil }

func (m *mockAuthService) VerifyOTP(context.Context, int64, models.OTPVerifyRequest) error { return nil }

func (m *mockAuthService) SetTwoFactor(context.Context, int64, models.TwoFactorRequest) error {
	return nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, userID, req)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	return m.requestPasswordResetFn(ctx, req)
}

func (m *mockAuthService) ConfirmPasswordReset(context.Context, models.PasswordResetConfirmRequest) error {
	return nil
}

type mockTokenService struct {
	service.TokenService

	authenticateFn func(ctx context.Context, token string) (models.Claims, error)
}

func (m *mockTokenService) Authenticate(ctx context.Context, token string) (models.Claims, error) {
	return m.authenticateFn(ctx, token)
}

// mockPermissionService embeds the real matrix and fakes quota lookups.
type mockPermissionService struct {
	service.PermissionService

	quotaFn func(ctx context.Context, userID int64, role models.Role, resource models.Resource) (models.Quota, error)
}

func (m *mockPermissionService) Quota(ctx context.Context, userID int64, role models.Role, resource models.Resource) (models.Quota, error) {
	return m.quotaFn(ctx, userID, role, resource)
}

type mockKeyService struct {
	service.KeyService

	rotateFn    func(ctx context.Context, userID int64, password string) (models.EncryptionKey, error)
	signFn      func(ctx context.Context, userID int64, req models.SignRequest) (models.SignResponse, error)
	publicKeyFn func(ctx context.Context, userID int64) (models.EncryptionKey, error)
}

func (m *mockKeyService) Rotate(ctx context.Context, userID int64, password string) (models.EncryptionKey, error) {
	return m.rotateFn(ctx, userID, password)
}

func (m *mockKeyService) Sign(ctx context.Context, userID int64, req models.SignRequest) (models.SignResponse, error) {
	return m.signFn(ctx, userID, req)
}

func (m *mockKeyService) PublicKey(ctx context.Context, userID int64) (models.EncryptionKey, error) {
	return m.publicKeyFn(ctx, userID)
}

type mockPartnerService struct {
	service.PartnerService

	authenticateFn       func(ctx context.Context, req models.PartnerAuthRequest) (models.GovernmentPartner, error)
	verifyIdentityFn     func(ctx context.Context, partner models.GovernmentPartner, userUUID string) (models.VerifyIdentityResponse, error)
	checkAuthorizationFn func(ctx context.Context, partner models.GovernmentPartner, req models.CheckAuthorizationRequest) (models.AuthorizationCheck, error)
	createPartnerFn      func(ctx context.Context, req models.CreatePartnerRequest) (models.GovernmentPartner, error)
	updateStatusFn       func(ctx context.Context, partnerID int64, status models.PartnerStatus) (models.GovernmentPartner, error)
	authorizeFn          func(ctx context.Context, claims models.Claims, serviceID int64, req models.AuthorizeServiceRequest) (models.UserServiceAuthorization, error)
	revokeFn             func(ctx context.Context, userID, serviceID int64) error
	listFn               func(ctx context.Context, userID int64) ([]models.UserServiceAuthorization, error)
}

func (m *mockPartnerService) Authenticate(ctx context.Context, req models.PartnerAuthRequest) (models.GovernmentPartner, error) {
	return m.authenticateFn(ctx, req)
}

func (m *mockPartnerService) VerifyIdentity(ctx context.Context, partner models.GovernmentPartner, userUUID string) (models.VerifyIdentityResponse, error) {
	return m.verifyIdentityFn(ctx, partner, userUUID)
}

func (m *mockPartnerService) CheckAuthorization(ctx context.Context, partner models.GovernmentPartner, req models.CheckAuthorizationRequest) (models.AuthorizationCheck, error) {
	return m.checkAuthorizationFn(ctx, partner, req)
}

func (m *mockPartnerService) CreatePartner(ctx context.Context, req models.CreatePartnerRequest) (models.GovernmentPartner, error) {
	return m.createPartnerFn(ctx, req)
}

func (m *mockPartnerService) UpdateStatus(ctx context.Context, partnerID int64, status models.PartnerStatus) (models.GovernmentPartner, error) {
	return m.updateStatusFn(ctx, partnerID, status)
}

func (m *mockPartnerService) Authorize(ctx context.Context, claims models.Claims, serviceID int64, req models.AuthorizeServiceRequest) (models.UserServiceAuthorization, error) {
	return m.authorizeFn(ctx, claims, serviceID, req)
}

func (m *mockPartnerService) Revoke(ctx context.Context, userID, serviceID int64) error {
	return m.revokeFn(ctx, userID, serviceID)
}

func (m *mockPartnerService) ListAuthorizations(ctx context.Context, userID int64) ([]models.UserServiceAuthorization, error) {
	return m.listFn(ctx, userID)
}

type mockEmergencyService struct {
	service.EmergencyService

	accessFn      func(ctx context.Context, userUUID, token string) (models.EmergencyProfile, error)
	issueFn       func(ctx context.Context, userID int64) (models.EmergencyTokenResponse, error)
	saveProfileFn func(ctx context.Context, claims models.Claims, req models.SaveEmergencyProfileRequest) (models.EmergencyProfile, error)

	denied []string
}

func (m *mockEmergencyService) Access(ctx context.Context, userUUID, token string) (models.EmergencyProfile, error) {
	return m.accessFn(ctx, userUUID, token)
}

func (m *mockEmergencyService) IssueToken(ctx context.Context, userID int64) (models.EmergencyTokenResponse, error) {
	return m.issueFn(ctx, userID)
}

func (m *mockEmergencyService) SaveProfile(ctx context.Context, claims models.Claims, req models.SaveEmergencyProfileRequest) (models.EmergencyProfile, error) {
	return m.saveProfileFn(ctx, claims, req)
}

func (m *mockEmergencyService) Denied(_ context.Context, _ string, reason string) {
	m.denied = append(m.denied, reason)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// newTestHandler returns a handler whose permission checks use the real
// role matrix.
func newTestHandler(services *service.Services) *Handler {
	if services.PermissionService == nil {
		services.PermissionService = &mockPermissionService{PermissionService: realPermissions()}
	}
	return &Handler{
		services:         services,
		emergencyLimiter: newKeyedLimiter(600, 100),
		logger:           logger.Nop(),
	}
}

func realPermissions() service.PermissionService {
	return service.NewPermissionService(&store.Storages{}, nil, logger.Nop())
}

func tokenFor(role models.Role) *mockTokenService {
	return &mockTokenService{
		authenticateFn: func(context.Context, string) (models.Claims, error) {
			return models.Claims{UserID: 42, UUID: testUserUUID, Role: role}, nil
		},
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authedRequest(method, target, body string) *http.Request {
	req := jsonRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer session-token")
	return req
}

func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
