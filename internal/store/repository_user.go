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

// userRepository is the SQL-backed implementation of [UserRepository].
// It works against the "users" table and, for credential changes, the
// user's rows in "encryption_keys".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user and its first key pair in one transaction:
// the user row, the key row, then the users.encryption_key_id link.
//
// Error handling:
//   - unique violation on the user row → [ErrEmailAlreadyExists].
//   - any other failure → wrapped low-level error; nothing is committed.
func (r *userRepository) Create(ctx context.Context, user models.User, key models.EncryptionKey) (models.User, models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, "*userRepository.Create", func(tx *sql.Tx) error {
		query, args, err := buildInsertUserQuery(r.db.builder, user)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.Create").Msg("error building insert user query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		// create user in db
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			if isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		// store key pair and point the user to it
		key, err = insertKey(ctx, tx, r.db.builder, user.UserID, key)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting encryption key")
			return err
		}
		if err = linkUserKey(ctx, tx, r.db.builder, user.UserID, key.ID, user.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.Create").Msg("error linking encryption key")
			return err
		}

		return nil
	})
	if err != nil {
		return models.User{}, models.EncryptionKey{}, err
	}

	user.EncryptionKeyID = &key.ID
	return user, key, nil
}

// FindByEmail returns the user registered with email, or [ErrNotFound].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByEmail", "email", email)
}

// FindByID returns the user with the internal id, or [ErrNotFound].
func (r *userRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByID", "id", userID)
}

// FindByUUID returns the user with the external uuid, or [ErrNotFound].
func (r *userRepository) FindByUUID(ctx context.Context, uuid string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByUUID", "uuid", uuid)
}

func (r *userRepository) findOne(ctx context.Context, funcName, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select user query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ClaimLoginAttempt atomically increments login_attempts before a password
// is checked and, once the new value reaches threshold, sets locked_until to
// lockUntil. It returns [ErrAccountLocked] while a lock is in force, so at
// most threshold concurrent attempts are ever admitted.
func (r *userRepository) ClaimLoginAttempt(ctx context.Context, userID int64, threshold int, lockUntil, now time.Time) (models.LoginFailure, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClaimLoginAttemptQuery(r.db.builder, userID, threshold, lockUntil, now)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClaimLoginAttempt").Msg("error building query")
		return models.LoginFailure{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var claim models.LoginFailure
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&claim.LoginAttempts); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.ClaimLoginAttempt").Msg("error claiming login attempt")
			return models.LoginFailure{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err = r.FindByID(ctx, userID); err != nil {
			return models.LoginFailure{}, err
		}
		return models.LoginFailure{}, ErrAccountLocked
	}

	// the statement stored lockUntil exactly when the threshold was reached
	if claim.LoginAttempts >= threshold {
		claim.LockedUntil = &lockUntil
	}

	return claim, nil
}

// ResetLoginAttempts clears the failure counter and any lock.
func (r *userRepository) ResetLoginAttempts(ctx context.Context, userID int64, now time.Time) error {
	query, args, err := buildResetLoginAttemptsQuery(r.db.builder, userID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.exec(ctx, r.db, "*userRepository.ResetLoginAttempts", query, args)
	return err
}

// ChangePassword stores the new credentials and the re-encrypted envelope of
// the active key in one transaction. It returns [ErrNoActiveKey] when key no
// longer designates the user's active key.
func (r *userRepository) ChangePassword(ctx context.Context, userID int64, creds models.Credentials, key models.EncryptionKey, now time.Time) error {
	return r.db.withTx(ctx, "*userRepository.ChangePassword", func(tx *sql.Tx) error {
		query, args, err := buildUpdateCredentialsQuery(r.db.builder, userID, creds, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		affected, err := r.db.exec(ctx, tx, "*userRepository.ChangePassword", query, args)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}

		query, args, err = buildUpdateKeyEnvelopeQuery(r.db.builder, userID, key)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		affected, err = r.db.exec(ctx, tx, "*userRepository.ChangePassword", query, args)
		if err != nil {
			return err
		}
		if affected != 1 {
			return ErrNoActiveKey
		}

		return nil
	})
}

// ResetPassword stores the new credentials, swaps in a fresh key pair and
// bumps the token epoch so every outstanding session token dies.
func (r *userRepository) ResetPassword(ctx context.Context, userID int64, creds models.Credentials, key models.EncryptionKey, now time.Time) (models.EncryptionKey, error) {
	err := r.db.withTx(ctx, "*userRepository.ResetPassword", func(tx *sql.Tx) error {
		query, args, err := buildUpdateCredentialsQuery(r.db.builder, userID, creds, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		affected, err := r.db.exec(ctx, tx, "*userRepository.ResetPassword", query, args)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}

		key, err = replaceActiveKey(ctx, tx, r.db.builder, userID, key, now)
		if err != nil {
			return err
		}

		query, args, err = buildBumpTokenVersionQuery(r.db.builder, userID, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		var version int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ResetPassword").Msg("password reset was not stored")
		return models.EncryptionKey{}, err
	}

	return key, nil
}

// BumpTokenVersion increments the token epoch and returns the new value.
func (r *userRepository) BumpTokenVersion(ctx context.Context, userID int64, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBumpTokenVersionQuery(r.db.builder, userID, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		log.Err(err).Str("func", "*userRepository.BumpTokenVersion").Msg("error bumping token version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return version, nil
}

// GetTokenVersion returns the current token epoch of the user.
func (r *userRepository) GetTokenVersion(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTokenVersionQuery(r.db.builder, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetTokenVersion").Msg("error reading token version")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return version, nil
}

func (r *userRepository) SetTwoFactor(ctx context.Context, userID int64, enabled bool, now time.Time) error {
	query, args, err := buildSetTwoFactorQuery(r.db.builder, userID, enabled, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, r.db, "*userRepository.SetTwoFactor", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
