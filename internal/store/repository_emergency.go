// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

type emergencyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmergencyRepository constructs an [EmergencyRepository].
func NewEmergencyRepository(db *DB, logger *logger.Logger) EmergencyRepository {
	logger.Debug().Msg("creating emergency repository")
	return &emergencyRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceToken keeps at most one active token per user: the previous one is
// revoked in the same transaction the new hash is inserted.
func (r *emergencyRepository) ReplaceToken(ctx context.Context, userID int64, tokenHash string, now time.Time) (models.EmergencyAccessToken, error) {
	token := models.EmergencyAccessToken{
		UserID:    userID,
		TokenHash: tokenHash,
		IsActive:  true,
		CreatedAt: now,
	}

	err := r.db.withTx(ctx, "*emergencyRepository.ReplaceToken", func(tx *sql.Tx) error {
		query, args, err := buildDeactivateEmergencyTokensQuery(r.db.builder, userID, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.db.exec(ctx, tx, "*emergencyRepository.ReplaceToken", query, args); err != nil {
			return err
		}

		query, args, err = buildInsertEmergencyTokenQuery(r.db.builder, userID, tokenHash, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&token.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*emergencyRepository.ReplaceToken").Msg("error replacing emergency token")
		return models.EmergencyAccessToken{}, err
	}

	return token, nil
}

func (r *emergencyRepository) RevokeToken(ctx context.Context, userID int64, now time.Time) error {
	query, args, err := buildDeactivateEmergencyTokensQuery(r.db.builder, userID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, r.db, "*emergencyRepository.RevokeToken", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *emergencyRepository) FindActiveToken(ctx context.Context, userID int64) (models.EmergencyAccessToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActiveEmergencyTokenQuery(r.db.builder, userID)
	if err != nil {
		return models.EmergencyAccessToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	token, err := scanEmergencyToken(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EmergencyAccessToken{}, ErrNotFound
		}
		log.Err(err).Str("func", "*emergencyRepository.FindActiveToken").Msg("error scanning emergency token")
		return models.EmergencyAccessToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// TouchToken records the last successful use of a token.
func (r *emergencyRepository) TouchToken(ctx context.Context, tokenID int64, now time.Time) error {
	query, args, err := buildTouchEmergencyTokenQuery(r.db.builder, tokenID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.exec(ctx, r.db, "*emergencyRepository.TouchToken", query, args)
	return err
}

// SaveProfile inserts or replaces the emergency profile of the user.
func (r *emergencyRepository) SaveProfile(ctx context.Context, profile models.EmergencyProfile) (models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertEmergencyProfileQuery(r.db.builder, profile)
	if err != nil {
		return models.EmergencyProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanEmergencyProfile(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*emergencyRepository.SaveProfile").Msg("error saving emergency profile")
		return models.EmergencyProfile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

func (r *emergencyRepository) FindProfile(ctx context.Context, userID int64) (models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmergencyProfileQuery(r.db.builder, userID)
	if err != nil {
		return models.EmergencyProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile, err := scanEmergencyProfile(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EmergencyProfile{}, ErrNotFound
		}
		log.Err(err).Str("func", "*emergencyRepository.FindProfile").Msg("error scanning emergency profile")
		return models.EmergencyProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}
