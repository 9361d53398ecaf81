package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/models"
)

type partnerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPartnerRepository constructs a [PartnerRepository].
func NewPartnerRepository(db *DB, logger *logger.Logger) PartnerRepository {
	logger.Debug().Msg("creating partner repository")
	return &partnerRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a partner. The sealed secret is stored, the clear one is
// left untouched on the returned value.
func (r *partnerRepository) Create(ctx context.Context, partner models.GovernmentPartner) (models.GovernmentPartner, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPartnerQuery(r.db.builder, partner)
	if err != nil {
		log.Err(err).Str("func", "*partnerRepository.Create").Msg("error building query")
		return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&partner.ID); err != nil {
		if isUniqueViolation(err) {
			return models.GovernmentPartner{}, ErrPartnerAlreadyExists
		}
		log.Err(err).Str("func", "*partnerRepository.Create").Msg("error inserting partner")
		return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return partner, nil
}

func (r *partnerRepository) FindByAPIKey(ctx context.Context, apiKey string) (models.GovernmentPartner, error) {
	return r.findOne(ctx, "*partnerRepository.FindByAPIKey", "api_key", apiKey)
}

func (r *partnerRepository) FindByID(ctx context.Context, partnerID int64) (models.GovernmentPartner, error) {
	return r.findOne(ctx, "*partnerRepository.FindByID", "id", partnerID)
}

func (r *partnerRepository) findOne(ctx context.Context, funcName, column string, value any) (models.GovernmentPartner, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPartnerQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	partner, err := scanPartner(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GovernmentPartner{}, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error scanning partner")
		return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return partner, nil
}

func (r *partnerRepository) UpdateStatus(ctx context.Context, partnerID int64, status models.PartnerStatus) (models.GovernmentPartner, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePartnerStatusQuery(r.db.builder, partnerID, status)
	if err != nil {
		return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	partner, err := scanPartner(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GovernmentPartner{}, ErrNotFound
		}
		log.Err(err).Str("func", "*partnerRepository.UpdateStatus").Msg("error updating partner status")
		return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return partner, nil
}

func (r *partnerRepository) CreateService(ctx context.Context, service models.PartnerService) (models.PartnerService, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertServiceQuery(r.db.builder, service)
	if err != nil {
		return models.PartnerService{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&service.ID); err != nil {
		if isUniqueViolation(err) {
			return models.PartnerService{}, ErrServiceAlreadyExists
		}
		log.Err(err).Str("func", "*partnerRepository.CreateService").Msg("error inserting partner service")
		return models.PartnerService{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return service, nil
}

func (r *partnerRepository) FindServiceByID(ctx context.Context, serviceID int64) (models.PartnerService, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectServiceQuery(r.db.builder, serviceID)
	if err != nil {
		return models.PartnerService{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	service, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PartnerService{}, ErrNotFound
		}
		log.Err(err).Str("func", "*partnerRepository.FindServiceByID").Msg("error scanning partner service")
		return models.PartnerService{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return service, nil
}
