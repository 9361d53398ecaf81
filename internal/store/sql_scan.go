package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-identity-vault/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user models.User
		role string
	)
	if err := row.Scan(
		&user.UserID, &user.UUID, &user.Email, &user.Name, &user.Phone,
		&user.PasswordHash, &user.PasswordSalt, &role, &user.LoginAttempts,
		&user.LockedUntil, &user.EncryptionKeyID, &user.TwoFactorEnabled,
		&user.TokenVersion, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return models.User{}, err
	}

	parsed, ok := models.ParseRole(role)
	if !ok {
		return models.User{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	user.Role = parsed

	return user, nil
}

func scanKey(row rowScanner) (models.EncryptionKey, error) {
	var key models.EncryptionKey
	err := row.Scan(
		&key.ID, &key.UserID, &key.PublicKey, &key.EncryptedPrivateKey, &key.IV,
		&key.Salt, &key.Algorithm, &key.IsActive, &key.CreatedAt, &key.DeactivatedAt,
	)
	return key, err
}

func scanPartner(row rowScanner) (models.GovernmentPartner, error) {
	var (
		partner models.GovernmentPartner
		status  string
	)
	err := row.Scan(
		&partner.ID, &partner.Name, &partner.APIKey, &partner.APISecretSealed,
		&status, &partner.IsActive, &partner.CreatedAt,
	)
	partner.Status = models.PartnerStatus(status)
	return partner, err
}

func scanService(row rowScanner) (models.PartnerService, error) {
	var service models.PartnerService
	err := row.Scan(
		&service.ID, &service.PartnerID, &service.Name, &service.RequiredScopes,
		&service.IsActive, &service.CreatedAt,
	)
	return service, err
}

func scanAuthorization(row rowScanner) (models.UserServiceAuthorization, error) {
	var auth models.UserServiceAuthorization
	err := row.Scan(
		&auth.ID, &auth.UserID, &auth.ServiceID, &auth.Scopes, &auth.ExpiresAt,
		&auth.IsActive, &auth.RevokedAt, &auth.CreatedAt,
	)
	return auth, err
}

func scanEmergencyToken(row rowScanner) (models.EmergencyAccessToken, error) {
	var token models.EmergencyAccessToken
	err := row.Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.IsActive,
		&token.RevokedAt, &token.LastUsedAt, &token.CreatedAt,
	)
	return token, err
}

func scanEmergencyProfile(row rowScanner) (models.EmergencyProfile, error) {
	var profile models.EmergencyProfile
	err := row.Scan(&profile.UserID, &profile.MedicalInfo, &profile.EmergencyDocuments, &profile.UpdatedAt)
	return profile, err
}
