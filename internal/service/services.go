package service

import (
	"fmt"

	"github.com/MKhiriev/go-identity-vault/internal/adapter"
	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/crypto"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/workers"
)

// Dependencies are the non-storage collaborators shared by the services.
type Dependencies struct {
	Credentials crypto.CredentialManager
	Vault       crypto.KeyVault
	Notifier    adapter.Notifier
	AuditQueue  AuditQueue

	// CryptoPool bounds PBKDF2 and AES work; KeygenPool bounds RSA key
	// generation.
	CryptoPool *workers.Pool
	KeygenPool *workers.Pool
}

type Services struct {
	AuthService       AuthService
	TokenService      TokenService
	OTPService        OTPService
	KeyService        KeyService
	AuditService      AuditService
	PermissionService PermissionService
	PartnerService    PartnerService
	EmergencyService  EmergencyService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, deps Dependencies, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	audit := NewAuditService(deps.AuditQueue, logger)
	tokens := NewTokenService(storages.UserRepository, cfg.App, logger)
	otps := NewOTPService(storages.OTPRepository, deps.Notifier, cfg.App, logger)
	keys := NewKeyService(storages, deps.Credentials, deps.Vault, deps.CryptoPool, deps.KeygenPool, audit, cfg.App, logger)
	permissions := NewPermissionService(storages, audit, logger)

	auth := newAuthService(authDeps{
		userRepository: storages.UserRepository,
		credentials:    deps.Credentials,
		keyService:     keys,
		tokenService:   tokens,
		otpService:     otps,
		auditService:   audit,
		cryptoPool:     deps.CryptoPool,
	}, cfg.App, logger)

	return &Services{
		AuthService:       NewAuthValidationService().Wrap(auth),
		TokenService:      tokens,
		OTPService:        otps,
		KeyService:        keys,
		AuditService:      audit,
		PermissionService: permissions,
		PartnerService:    NewPartnerService(storages, deps.Vault, permissions, audit, cfg.App, logger),
		EmergencyService:  NewEmergencyService(storages, permissions, audit, logger),
		AppInfoService:    appInfo,
	}, nil
}
