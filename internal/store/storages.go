package store

import (
	"github.com/MKhiriev/go-identity-vault/internal/logger"
)

// Storages aggregates every repository built on one datastore connection.
type Storages struct {
	DB *DB

	UserRepository          UserRepository
	KeyRepository           KeyRepository
	OTPRepository           OTPRepository
	AuditRepository         AuditRepository
	PartnerRepository       PartnerRepository
	AuthorizationRepository AuthorizationRepository
	EmergencyRepository     EmergencyRepository
	UsageRepository         UsageRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                      db,
		UserRepository:          NewUserRepository(db, log),
		KeyRepository:           NewKeyRepository(db, log),
		OTPRepository:           NewOTPRepository(db, log),
		AuditRepository:         NewAuditRepository(db, log),
		PartnerRepository:       NewPartnerRepository(db, log),
		AuthorizationRepository: NewAuthorizationRepository(db, log),
		EmergencyRepository:     NewEmergencyRepository(db, log),
		UsageRepository:         NewUsageRepository(db, log),
	}
}
