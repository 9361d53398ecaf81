package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/models"
)

type usageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUsageRepository constructs a [UsageRepository].
func NewUsageRepository(db *DB, logger *logger.Logger) UsageRepository {
	logger.Debug().Msg("creating usage repository")
	return &usageRepository{
		db:     db,
		logger: logger,
	}
}

// Count returns the usage counter of resource; a missing row means zero.
func (r *usageRepository) Count(ctx context.Context, userID int64, resource models.Resource) (int, error) {
	query, args, err := buildSelectUsageQuery(r.db.builder, userID, resource)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var used int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&used); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return used, nil
}
