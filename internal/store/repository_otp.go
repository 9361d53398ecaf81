package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/models"
)

type otpRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOTPRepository constructs an [OTPRepository].
func NewOTPRepository(db *DB, logger *logger.Logger) OTPRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{
		db:     db,
		logger: logger,
	}
}

func (r *otpRepository) Create(ctx context.Context, otp models.OTPCode) (models.OTPCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOTPQuery(r.db.builder, otp)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.Create").Msg("error building query")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&otp.ID); err != nil {
		log.Err(err).Str("func", "*otpRepository.Create").Msg("error inserting otp")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return otp, nil
}

// Consume is the single conditional update that makes a code single-use:
// of two concurrent callers only one sees an affected row.
func (r *otpRepository) Consume(ctx context.Context, userID int64, code string, purpose models.OTPPurpose, now time.Time) (bool, error) {
	query, args, err := buildConsumeOTPQuery(r.db.builder, userID, code, purpose, now)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, r.db, "*otpRepository.Consume", query, args)
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}
