package crypto

import "crypto/rsa"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CredentialManager derives and verifies password hashes. It knows nothing
// about users, storage or transport.
//
// Flow:
//
//	salt = GenerateSalt()
//	hash = HashPassword(password, salt)          (registration)
//	ok   = VerifyPassword(password, salt, hash)  (login)
type CredentialManager interface {
	// GenerateSalt returns 32 random bytes, hex encoded.
	GenerateSalt() (string, error)

	// HashPassword derives the hex PBKDF2-HMAC-SHA512 hash of password.
	HashPassword(password, salt string) (string, error)

	// VerifyPassword recomputes the hash and compares it in constant time.
	// Malformed stored values yield ErrVerificationFailed.
	VerifyPassword(password, salt, storedHash string) (bool, error)
}

// KeyVault generates per-user RSA key pairs and keeps their private halves
// encrypted under the owner's password.
//
// A private key is protected by two layers:
//
//	inner: PKCS#8 sealed with a vault-wide key (HKDF of the operator passphrase),
//	       stored as a "WRAPPED PRIVATE KEY" PEM block
//	outer: AES-256-GCM under PBKDF2(password, salt), stored as hex(ct):hex(tag)
//
// Neither the operator nor a database dump alone can recover a private key.
type KeyVault interface {
	// GenerateKeyPair returns the PKIX public key PEM and the inner-wrapped
	// private key.
	GenerateKeyPair() (publicPEM string, wrapped []byte, err error)

	// EncryptPrivateKey applies the outer layer. It returns the blob and the
	// hex IV.
	EncryptPrivateKey(wrapped []byte, password, salt string) (blob, iv string, err error)

	// DecryptPrivateKey reverses both layers. Any failure is ErrDecryptionFailed.
	DecryptPrivateKey(blob, password, salt, iv string) (*rsa.PrivateKey, error)

	// ReencryptPrivateKey moves the outer layer from oldPassword to
	// newPassword under a fresh salt and IV. The key pair is unchanged.
	ReencryptPrivateKey(blob, oldPassword, salt, iv, newPassword string) (newBlob, newSalt, newIV string, err error)

	// WithPrivateKey decrypts the key, hands it to fn and zeroes the key
	// material when fn returns.
	WithPrivateKey(blob, password, salt, iv string, fn func(*rsa.PrivateKey) error) error

	// Sign returns an RSA-PSS SHA-256 signature of message.
	Sign(key *rsa.PrivateKey, message []byte) ([]byte, error)

	// VerifySignature checks an RSA-PSS SHA-256 signature against a PEM
	// public key.
	VerifySignature(publicPEM string, message, signature []byte) error

	// SealSecret encrypts a short server-side secret (partner API secrets)
	// with the vault-wide key.
	SealSecret(plaintext string) (string, error)

	// OpenSecret reverses SealSecret.
	OpenSecret(sealed string) (string, error)
}
