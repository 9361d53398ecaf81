package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/models"
)

type authorizationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthorizationRepository constructs an [AuthorizationRepository].
func NewAuthorizationRepository(db *DB, logger *logger.Logger) AuthorizationRepository {
	logger.Debug().Msg("creating authorization repository")
	return &authorizationRepository{
		db:     db,
		logger: logger,
	}
}

// Create soft-revokes the live grant for (user, service) and inserts the new
// one in the same transaction. auth.CreatedAt is used as revocation time.
func (r *authorizationRepository) Create(ctx context.Context, auth models.UserServiceAuthorization) (models.UserServiceAuthorization, error) {
	err := r.db.withTx(ctx, "*authorizationRepository.Create", func(tx *sql.Tx) error {
		query, args, err := buildRevokeAuthorizationQuery(r.db.builder, auth.UserID, auth.ServiceID, auth.CreatedAt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.db.exec(ctx, tx, "*authorizationRepository.Create", query, args); err != nil {
			return err
		}

		query, args, err = buildInsertAuthorizationQuery(r.db.builder, auth)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&auth.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authorizationRepository.Create").Msg("error storing authorization")
		return models.UserServiceAuthorization{}, err
	}

	auth.IsActive = true
	auth.RevokedAt = nil
	return auth, nil
}

// Revoke soft-revokes the live grant. It returns [ErrNotFound] when there is
// nothing to revoke.
func (r *authorizationRepository) Revoke(ctx context.Context, userID, serviceID int64, now time.Time) error {
	query, args, err := buildRevokeAuthorizationQuery(r.db.builder, userID, serviceID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, r.db, "*authorizationRepository.Revoke", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *authorizationRepository) FindCurrent(ctx context.Context, userID, serviceID int64) (models.UserServiceAuthorization, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCurrentAuthorizationQuery(r.db.builder, userID, serviceID)
	if err != nil {
		return models.UserServiceAuthorization{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	auth, err := scanAuthorization(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserServiceAuthorization{}, ErrNotFound
		}
		log.Err(err).Str("func", "*authorizationRepository.FindCurrent").Msg("error scanning authorization")
		return models.UserServiceAuthorization{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return auth, nil
}

// ListByUser returns every grant of the user, revoked ones included, newest
// first.
func (r *authorizationRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserServiceAuthorization, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAuthorizationsByUserQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorizationRepository.ListByUser").Msg("error querying authorizations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.UserServiceAuthorization, 0)
	for rows.Next() {
		auth, err := scanAuthorization(rows)
		if err != nil {
			log.Err(err).Str("func", "*authorizationRepository.ListByUser").Msg("error scanning authorization")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, auth)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *authorizationRepository) CountActive(ctx context.Context, userID int64, now time.Time) (int, error) {
	query, args, err := buildCountActiveAuthorizationsQuery(r.db.builder, userID, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// HasActiveForPartner reports whether the user holds an effective grant for
// any service of the partner.
func (r *authorizationRepository) HasActiveForPartner(ctx context.Context, userID, partnerID int64, now time.Time) (bool, error) {
	query, args, err := buildHasActiveForPartnerQuery(r.db.builder, userID, partnerID, now)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count > 0, nil
}
