package models

import "time"

// KeyAlgorithm is the only algorithm tag written for private key envelopes.
const KeyAlgorithm = "AES-256-GCM"

// EncryptionKey is a user's RSA key pair as stored at rest. The private half
// is never persisted in clear text: EncryptedPrivateKey is
// "hex(ciphertext):hex(tag)" produced under a key derived from the user's
// password and Salt.
type EncryptionKey struct {
	ID int64 `json:"id"`

	// UserID is nil while the key row exists but is not yet assigned.
	UserID *int64 `json:"-"`

	PublicKey           string `json:"public_key"`
	EncryptedPrivateKey string `json:"-"`
	IV                  string `json:"-"`
	Salt                string `json:"-"`
	Algorithm           string `json:"algorithm"`

	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}
