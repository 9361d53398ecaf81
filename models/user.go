package models

import "time"

// User represents an account of the portal as seen by the identity subsystem.
// Credential material (hash, salt) is never serialized to JSON.
type User struct {
	// UserID is the internal identifier. It is used by the persistence layer
	// and carried in session tokens, but not exposed over the public API.
	UserID int64 `json:"-"`

	// UUID is the stable external identifier handed to partners and used in
	// emergency links.
	UUID string `json:"uuid"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty"`

	// Phone is the optional SMS channel for one-time passwords.
	Phone string `json:"phone,omitempty"`

	// Password is the plain-text password as received from the client.
	// It only ever lives in request-scoped memory and is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the hex PBKDF2-HMAC-SHA512 digest of the password.
	PasswordHash string `json:"-"`

	// PasswordSalt is the hex salt the hash was derived with.
	PasswordSalt string `json:"-"`

	Role Role `json:"role"`

	// LoginAttempts counts consecutive failed logins. It is reset to zero on
	// every successful authentication.
	LoginAttempts int `json:"-"`

	// LockedUntil is set once LoginAttempts reaches the lockout threshold.
	LockedUntil *time.Time `json:"-"`

	// EncryptionKeyID references the user's active EncryptionKey.
	EncryptionKeyID *int64 `json:"-"`

	TwoFactorEnabled bool `json:"two_factor_enabled"`

	// TokenVersion is the per-user token epoch. Session tokens carrying an
	// older version are rejected.
	TokenVersion int64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// IsLocked reports whether the account is locked at the given instant.
func (u User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// LoginFailure is the counter state after a claimed login attempt.
type LoginFailure struct {
	LoginAttempts int
	LockedUntil   *time.Time
}

// Credentials groups the values replaced when a password changes.
type Credentials struct {
	PasswordHash string
	PasswordSalt string
}
