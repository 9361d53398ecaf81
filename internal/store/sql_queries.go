package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-identity-vault/models"
)

const (
	usersTable             = "users"
	keysTable              = "encryption_keys"
	otpTable               = "otp_codes"
	auditTable             = "audit_logs"
	partnersTable          = "government_partners"
	servicesTable          = "partner_services"
	authorizationsTable    = "user_service_authorizations"
	emergencyTokensTable   = "emergency_access_tokens"
	emergencyProfilesTable = "emergency_profiles"
	usageTable             = "resource_usage"
)

var (
	userColumns = []string{
		"id", "uuid", "email", "name", "phone", "password_hash", "password_salt", "role",
		"login_attempts", "locked_until", "encryption_key_id", "two_factor_enabled",
		"token_version", "created_at", "updated_at",
	}
	keyColumns = []string{
		"id", "user_id", "public_key", "encrypted_private_key", "iv", "salt",
		"algorithm", "is_active", "created_at", "deactivated_at",
	}
	otpColumns = []string{
		"id", "user_id", "code", "type", "purpose", "expires_at", "used_at", "created_at",
	}
	partnerColumns = []string{
		"id", "name", "api_key", "api_secret_encrypted", "status", "is_active", "created_at",
	}
	serviceColumns = []string{
		"id", "partner_id", "name", "required_scopes", "is_active", "created_at",
	}
	authorizationColumns = []string{
		"id", "user_id", "service_id", "scopes", "expires_at", "is_active", "revoked_at", "created_at",
	}
	emergencyTokenColumns = []string{
		"id", "user_id", "token_hash", "is_active", "revoked_at", "last_used_at", "created_at",
	}
	emergencyProfileColumns = []string{
		"user_id", "medical_info", "emergency_documents", "updated_at",
	}
)

func returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// notExpired matches rows whose expires_at is unset or in the future.
func notExpired(column string, now time.Time) sq.Or {
	return sq.Or{sq.Eq{column: nil}, sq.Gt{column: now}}
}

// users

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("uuid", "email", "name", "phone", "password_hash", "password_salt", "role",
			"two_factor_enabled", "created_at", "updated_at").
		Values(user.UUID, user.Email, user.Name, user.Phone, user.PasswordHash, user.PasswordSalt,
			string(user.Role), user.TwoFactorEnabled, user.CreatedAt, user.UpdatedAt).
		Suffix(returning("id")).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildLinkUserKeyQuery(b sq.StatementBuilderType, userID, keyID int64, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("encryption_key_id", keyID).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// claimedAttempts is the counter after a claim. A row whose lock has
// expired starts over at one. In SET expressions columns hold old values.
const claimedAttempts = "CASE WHEN locked_until IS NULL THEN login_attempts + 1 ELSE 1 END"

// buildClaimLoginAttemptQuery counts an attempt and locks in the same
// statement. Rows under an unexpired lock do not match.
func buildClaimLoginAttemptQuery(b sq.StatementBuilderType, userID int64, threshold int, lockUntil, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("login_attempts", sq.Expr(claimedAttempts)).
		Set("locked_until", sq.Expr("CASE WHEN "+claimedAttempts+" >= ? THEN ? ELSE NULL END", threshold, lockUntil)).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		Where(sq.Or{sq.Eq{"locked_until": nil}, sq.LtOrEq{"locked_until": now}}).
		Suffix(returning("login_attempts")).
		ToSql()
}

func buildResetLoginAttemptsQuery(b sq.StatementBuilderType, userID int64, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("login_attempts", 0).
		Set("locked_until", nil).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateCredentialsQuery(b sq.StatementBuilderType, userID int64, creds models.Credentials, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", creds.PasswordHash).
		Set("password_salt", creds.PasswordSalt).
		Set("login_attempts", 0).
		Set("locked_until", nil).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildBumpTokenVersionQuery(b sq.StatementBuilderType, userID int64, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("token_version", sq.Expr("token_version + 1")).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		Suffix(returning("token_version")).
		ToSql()
}

func buildSelectTokenVersionQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("token_version").
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildSetTwoFactorQuery(b sq.StatementBuilderType, userID int64, enabled bool, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("two_factor_enabled", enabled).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// encryption keys

func buildInsertKeyQuery(b sq.StatementBuilderType, userID int64, key models.EncryptionKey) (string, []any, error) {
	return b.Insert(keysTable).
		Columns("user_id", "public_key", "encrypted_private_key", "iv", "salt", "algorithm", "is_active", "created_at").
		Values(userID, key.PublicKey, key.EncryptedPrivateKey, key.IV, key.Salt, key.Algorithm, true, key.CreatedAt).
		Suffix(returning("id")).
		ToSql()
}

func buildSelectActiveKeyQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(keyColumns...).
		From(keysTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

func buildDeactivateKeysQuery(b sq.StatementBuilderType, userID int64, now time.Time) (string, []any, error) {
	return b.Update(keysTable).
		Set("is_active", false).
		Set("deactivated_at", now).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

func buildUpdateKeyEnvelopeQuery(b sq.StatementBuilderType, userID int64, key models.EncryptionKey) (string, []any, error) {
	return b.Update(keysTable).
		Set("encrypted_private_key", key.EncryptedPrivateKey).
		Set("iv", key.IV).
		Set("salt", key.Salt).
		Where(sq.Eq{"id": key.ID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

// one-time passwords

func buildInsertOTPQuery(b sq.StatementBuilderType, otp models.OTPCode) (string, []any, error) {
	return b.Insert(otpTable).
		Columns("user_id", "code", "type", "purpose", "expires_at", "created_at").
		Values(otp.UserID, otp.Code, string(otp.Type), string(otp.Purpose), otp.ExpiresAt, otp.CreatedAt).
		Suffix(returning("id")).
		ToSql()
}

func buildConsumeOTPQuery(b sq.StatementBuilderType, userID int64, code string, purpose models.OTPPurpose, now time.Time) (string, []any, error) {
	return b.Update(otpTable).
		Set("used_at", now).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"code": code}).
		Where(sq.Eq{"purpose": string(purpose)}).
		Where(sq.Eq{"used_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

// audit

func buildInsertAuditQuery(b sq.StatementBuilderType, entry *models.AuditLogEntry) (string, []any, error) {
	return b.Insert(auditTable).
		Columns("user_id", "action", "resource_type", "resource_id", "ip_address", "user_agent",
			"details", "severity", "created_at").
		Values(entry.UserID, entry.Action, entry.ResourceType, entry.ResourceID, entry.IPAddress,
			entry.UserAgent, entry.Details, string(entry.Severity), entry.CreatedAt).
		Suffix(returning("id")).
		ToSql()
}

// partners

func buildInsertPartnerQuery(b sq.StatementBuilderType, partner models.GovernmentPartner) (string, []any, error) {
	return b.Insert(partnersTable).
		Columns("name", "api_key", "api_secret_encrypted", "status", "is_active", "created_at").
		Values(partner.Name, partner.APIKey, partner.APISecretSealed, string(partner.Status), partner.IsActive, partner.CreatedAt).
		Suffix(returning("id")).
		ToSql()
}

func buildSelectPartnerQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return b.Select(partnerColumns...).
		From(partnersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildUpdatePartnerStatusQuery(b sq.StatementBuilderType, partnerID int64, status models.PartnerStatus) (string, []any, error) {
	return b.Update(partnersTable).
		Set("status", string(status)).
		Where(sq.Eq{"id": partnerID}).
		Suffix(returning(partnerColumns...)).
		ToSql()
}

func buildInsertServiceQuery(b sq.StatementBuilderType, service models.PartnerService) (string, []any, error) {
	return b.Insert(servicesTable).
		Columns("partner_id", "name", "required_scopes", "is_active", "created_at").
		Values(service.PartnerID, service.Name, service.RequiredScopes, service.IsActive, service.CreatedAt).
		Suffix(returning("id")).
		ToSql()
}

func buildSelectServiceQuery(b sq.StatementBuilderType, serviceID int64) (string, []any, error) {
	return b.Select(serviceColumns...).
		From(servicesTable).
		Where(sq.Eq{"id": serviceID}).
		ToSql()
}

// service authorizations

func buildRevokeAuthorizationQuery(b sq.StatementBuilderType, userID, serviceID int64, now time.Time) (string, []any, error) {
	return b.Update(authorizationsTable).
		Set("is_active", false).
		Set("revoked_at", now).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"service_id": serviceID}).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
}

func buildInsertAuthorizationQuery(b sq.StatementBuilderType, auth models.UserServiceAuthorization) (string, []any, error) {
	return b.Insert(authorizationsTable).
		Columns("user_id", "service_id", "scopes", "expires_at", "is_active", "created_at").
		Values(auth.UserID, auth.ServiceID, auth.Scopes, auth.ExpiresAt, true, auth.CreatedAt).
		Suffix(returning("id")).
		ToSql()
}

func buildSelectCurrentAuthorizationQuery(b sq.StatementBuilderType, userID, serviceID int64) (string, []any, error) {
	return b.Select(authorizationColumns...).
		From(authorizationsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"service_id": serviceID}).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Eq{"revoked_at": nil}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
}

func buildSelectAuthorizationsByUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(authorizationColumns...).
		From(authorizationsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildCountActiveAuthorizationsQuery(b sq.StatementBuilderType, userID int64, now time.Time) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(authorizationsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Eq{"revoked_at": nil}).
		Where(notExpired("expires_at", now)).
		ToSql()
}

func buildHasActiveForPartnerQuery(b sq.StatementBuilderType, userID, partnerID int64, now time.Time) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(authorizationsTable + " a").
		Join(servicesTable + " s ON s.id = a.service_id").
		Where(sq.Eq{"a.user_id": userID}).
		Where(sq.Eq{"s.partner_id": partnerID}).
		Where(sq.Eq{"a.is_active": true}).
		Where(sq.Eq{"a.revoked_at": nil}).
		Where(notExpired("a.expires_at", now)).
		ToSql()
}

// emergency access

func buildDeactivateEmergencyTokensQuery(b sq.StatementBuilderType, userID int64, now time.Time) (string, []any, error) {
	return b.Update(emergencyTokensTable).
		Set("is_active", false).
		Set("revoked_at", now).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

func buildInsertEmergencyTokenQuery(b sq.StatementBuilderType, userID int64, tokenHash string, now time.Time) (string, []any, error) {
	return b.Insert(emergencyTokensTable).
		Columns("user_id", "token_hash", "is_active", "created_at").
		Values(userID, tokenHash, true, now).
		Suffix(returning("id")).
		ToSql()
}

func buildSelectActiveEmergencyTokenQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(emergencyTokenColumns...).
		From(emergencyTokensTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
}

func buildTouchEmergencyTokenQuery(b sq.StatementBuilderType, tokenID int64, now time.Time) (string, []any, error) {
	return b.Update(emergencyTokensTable).
		Set("last_used_at", now).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

func buildUpsertEmergencyProfileQuery(b sq.StatementBuilderType, profile models.EmergencyProfile) (string, []any, error) {
	return b.Insert(emergencyProfilesTable).
		Columns(emergencyProfileColumns...).
		Values(profile.UserID, profile.MedicalInfo, profile.EmergencyDocuments, profile.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " +
			"medical_info = excluded.medical_info, " +
			"emergency_documents = excluded.emergency_documents, " +
			"updated_at = excluded.updated_at " +
			returning(emergencyProfileColumns...)).
		ToSql()
}

func buildSelectEmergencyProfileQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(emergencyProfileColumns...).
		From(emergencyProfilesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// usage

func buildSelectUsageQuery(b sq.StatementBuilderType, userID int64, resource models.Resource) (string, []any, error) {
	return b.Select("used").
		From(usageTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"resource": string(resource)}).
		ToSql()
}
