package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/models"
)

type keyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKeyRepository constructs a [KeyRepository].
func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{
		db:     db,
		logger: logger,
	}
}

// FindActiveByUserID returns the single active key of the user, or
// [ErrNoActiveKey].
func (r *keyRepository) FindActiveByUserID(ctx context.Context, userID int64) (models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActiveKeyQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.FindActiveByUserID").Msg("error building query")
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	key, err := scanKey(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptionKey{}, ErrNoActiveKey
		}
		log.Err(err).Str("func", "*keyRepository.FindActiveByUserID").Msg("error scanning key")
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return key, nil
}

// Rotate deactivates the current key (it is kept, never deleted) and makes
// key the active one.
func (r *keyRepository) Rotate(ctx context.Context, userID int64, key models.EncryptionKey, now time.Time) (models.EncryptionKey, error) {
	err := r.db.withTx(ctx, "*keyRepository.Rotate", func(tx *sql.Tx) error {
		var err error
		key, err = replaceActiveKey(ctx, tx, r.db.builder, userID, key, now)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRepository.Rotate").Msg("key rotation failed")
		return models.EncryptionKey{}, err
	}

	return key, nil
}

func insertKey(ctx context.Context, q queryer, b sq.StatementBuilderType, userID int64, key models.EncryptionKey) (models.EncryptionKey, error) {
	if key.Algorithm == "" {
		key.Algorithm = models.KeyAlgorithm
	}

	query, args, err := buildInsertKeyQuery(b, userID, key)
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = q.QueryRowContext(ctx, query, args...).Scan(&key.ID); err != nil {
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	key.UserID = &userID
	key.IsActive = true
	key.DeactivatedAt = nil

	return key, nil
}

func linkUserKey(ctx context.Context, q queryer, b sq.StatementBuilderType, userID, keyID int64, now time.Time) error {
	query, args, err := buildLinkUserKeyQuery(b, userID, keyID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// replaceActiveKey runs deactivate, insert and link on the same transaction
// so the one-active-key index is never violated.
func replaceActiveKey(ctx context.Context, tx *sql.Tx, b sq.StatementBuilderType, userID int64, key models.EncryptionKey, now time.Time) (models.EncryptionKey, error) {
	if key.CreatedAt.IsZero() {
		key.CreatedAt = now
	}

	query, args, err := buildDeactivateKeysQuery(b, userID, now)
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	key, err = insertKey(ctx, tx, b, userID, key)
	if err != nil {
		return models.EncryptionKey{}, err
	}

	if err = linkUserKey(ctx, tx, b, userID, key.ID, now); err != nil {
		return models.EncryptionKey{}, err
	}

	return key, nil
}
