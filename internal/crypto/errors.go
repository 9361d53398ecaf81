package crypto

import "errors"

var (
	// ErrDecryptionFailed covers every failure to recover a private key or
	// sealed secret: wrong password, tampered ciphertext, malformed input.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrVerificationFailed is returned when stored credential values are
	// malformed and cannot be compared.
	ErrVerificationFailed = errors.New("credential verification failed")
	// ErrInvalidPublicKey is returned for unparsable or non-RSA public keys.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidSignature is returned when a signature does not verify.
	ErrInvalidSignature = errors.New("invalid signature")
)
