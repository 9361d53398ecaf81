package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/mock"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/workers"
	"github.com/MKhiriev/go-identity-vault/models"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedNow() time.Time { return testNow }

const testUserUUID = "0190f5a4-3b7e-7c1a-9d2e-5f6a7b8c9d0e"

// ─────────────────────────────────────────────
// Audit queue
// ─────────────────────────────────────────────

type recordingQueue struct {
	mu      sync.Mutex
	entries []models.AuditLogEntry
	full    bool
}

func (q *recordingQueue) Enqueue(entry models.AuditLogEntry) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.full {
		return false
	}
	q.entries = append(q.entries, entry)
	return true
}

func (q *recordingQueue) actions() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, 0, len(q.entries))
	for _, e := range q.entries {
		out = append(out, e.Action)
	}
	return out
}

func (q *recordingQueue) last() models.AuditLogEntry {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return models.AuditLogEntry{}
	}
	return q.entries[len(q.entries)-1]
}

func newTestAudit() (AuditService, *recordingQueue) {
	q := &recordingQueue{}
	a := NewAuditService(q, logger.Nop()).(*auditService)
	a.now = fixedNow
	return a, q
}

// ─────────────────────────────────────────────
// Storages backed by gomock
// ─────────────────────────────────────────────

type storeMocks struct {
	users          *mock.MockUserRepository
	keys           *mock.MockKeyRepository
	otps           *mock.MockOTPRepository
	partners       *mock.MockPartnerRepository
	authorizations *mock.MockAuthorizationRepository
	emergency      *mock.MockEmergencyRepository
	usage          *mock.MockUsageRepository
}

func newTestStorages(ctrl *gomock.Controller) (*store.Storages, storeMocks) {
	m := storeMocks{
		users:          mock.NewMockUserRepository(ctrl),
		keys:           mock.NewMockKeyRepository(ctrl),
		otps:           mock.NewMockOTPRepository(ctrl),
		partners:       mock.NewMockPartnerRepository(ctrl),
		authorizations: mock.NewMockAuthorizationRepository(ctrl),
		emergency:      mock.NewMockEmergencyRepository(ctrl),
		usage:          mock.NewMockUsageRepository(ctrl),
	}
	return &store.Storages{
		UserRepository:          m.users,
		KeyRepository:           m.keys,
		OTPRepository:           m.otps,
		AuditRepository:         mock.NewMockAuditRepository(ctrl),
		PartnerRepository:       m.partners,
		AuthorizationRepository: m.authorizations,
		EmergencyRepository:     m.emergency,
		UsageRepository:         m.usage,
	}, m
}

func newTestPermissions(storages *store.Storages, audit AuditService) *permissionService {
	p := NewPermissionService(storages, audit, logger.Nop()).(*permissionService)
	p.now = fixedNow
	return p
}

// expectClaim admits one attempt on the lockout counter of userID with the
// limits of testAppConfig.
func expectClaim(users *mock.MockUserRepository, userID int64, claim models.LoginFailure) *gomock.Call {
	return users.EXPECT().
		ClaimLoginAttempt(gomock.Any(), userID, 3, testNow.Add(30*time.Minute), testNow).
		Return(claim, nil)
}

func testPools() (cryptoPool, keygenPool *workers.Pool) {
	return workers.NewPool("crypto", 2), workers.NewPool("keygen", 1)
}

func testUser() models.User {
	return models.User{
		UserID:       42,
		UUID:         testUserUUID,
		Email:        "ada@example.com",
		Name:         "Ada",
		PasswordHash: "stored-hash",
		PasswordSalt: "stored-salt",
		Role:         models.RoleFree,
		TokenVersion: 3,
		CreatedAt:    testNow.Add(-24 * time.Hour),
	}
}

func testKey() models.EncryptionKey {
	userID := int64(42)
	return models.EncryptionKey{
		ID:                  7,
		UserID:              &userID,
		PublicKey:           "-----BEGIN PUBLIC KEY-----\nAAAA\n-----END PUBLIC KEY-----\n",
		EncryptedPrivateKey: "c1:t1",
		IV:                  "iv1",
		Salt:                "salt1",
		Algorithm:           models.KeyAlgorithm,
		IsActive:            true,
	}
}

// ─────────────────────────────────────────────
// Fn-field fakes for service collaborators
// ─────────────────────────────────────────────

type fakeKeyService struct {
	generateFn  func(ctx context.Context, password string) (models.EncryptionKey, error)
	reencryptFn func(ctx context.Context, key models.EncryptionKey, oldPassword, newPassword string) (models.EncryptionKey, error)
	publicKeyFn func(ctx context.Context, userID int64) (models.EncryptionKey, error)
}

func (f *fakeKeyService) GenerateKey(ctx context.Context, password string) (models.EncryptionKey, error) {
	if f.generateFn != nil {
		return f.generateFn(ctx, password)
	}
	return testKey(), nil
}

func (f *fakeKeyService) Reencrypt(ctx context.Context, key models.EncryptionKey, oldPassword, newPassword string) (models.EncryptionKey, error) {
	if f.reencryptFn != nil {
		return f.reencryptFn(ctx, key, oldPassword, newPassword)
	}
	return key, nil
}

func (f *fakeKeyService) Rotate(context.Context, int64, string) (models.EncryptionKey, error) {
	return models.EncryptionKey{}, nil
}

func (f *fakeKeyService) Sign(context.Context, int64, models.SignRequest) (models.SignResponse, error) {
	return models.SignResponse{}, nil
}

func (f *fakeKeyService) PublicKey(ctx context.Context, userID int64) (models.EncryptionKey, error) {
	if f.publicKeyFn != nil {
		return f.publicKeyFn(ctx, userID)
	}
	return testKey(), nil
}

type fakeOTPService struct {
	mu      sync.Mutex
	created []models.OTPPurpose

	createErr error
	verifyFn  func(userID int64, code string, purpose models.OTPPurpose) (bool, error)
}

func (f *fakeOTPService) CreateOTP(_ context.Context, user models.User, otpType models.OTPType, purpose models.OTPPurpose) (models.OTPCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return models.OTPCode{}, f.createErr
	}
	f.created = append(f.created, purpose)
	return models.OTPCode{UserID: user.UserID, Code: "123456", Type: otpType, Purpose: purpose}, nil
}

func (f *fakeOTPService) VerifyOTP(_ context.Context, userID int64, code string, purpose models.OTPPurpose) (bool, error) {
	if f.verifyFn != nil {
		return f.verifyFn(userID, code, purpose)
	}
	return code == "123456", nil
}
