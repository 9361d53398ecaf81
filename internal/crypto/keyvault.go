// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	stdcrypto "crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// DefaultKeyBits is the RSA modulus size of user key pairs.
	DefaultKeyBits = 4096
	// IVLength is the outer-layer GCM nonce length.
	IVLength = 16

	tagLength          = 16
	vaultSaltLength    = 16
	vaultKeyLength     = 32
	wrappedKeyPEMType  = "WRAPPED PRIVATE KEY"
	publicKeyPEMType   = "PUBLIC KEY"
	wrapInfo           = "go-identity-vault/private-key-wrap"
	sealInfo           = "go-identity-vault/secret-seal"
	sealSeparator      = ":"
	encryptedSeparator = ":"
)

type keyVault struct {
	passphrase []byte
	bits       int
	iterations int
}

// Option customises a key vault.
type Option func(*keyVault)

// WithKeyBits overrides the RSA modulus size.
func WithKeyBits(bits int) Option {
	return func(v *keyVault) { v.bits = bits }
}

// WithIterations overrides the PBKDF2 iteration count of the outer layer.
func WithIterations(n int) Option {
	return func(v *keyVault) { v.iterations = n }
}

// NewKeyVault returns a [KeyVault] whose inner wrap and secret seal keys are
// derived from passphrase.
func NewKeyVault(passphrase string, opts ...Option) KeyVault {
	v := &keyVault{
		passphrase: []byte(passphrase),
		bits:       DefaultKeyBits,
		iterations: PBKDF2Iterations,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *keyVault) GenerateKeyPair() (string, []byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, v.bits)
	if err != nil {
		return "", nil, fmt.Errorf("error generating RSA key: %w", err)
	}
	defer zeroPrivateKey(key)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", nil, fmt.Errorf("error marshaling private key: %w", err)
	}
	defer clear(der)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", nil, fmt.Errorf("error marshaling public key: %w", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: publicKeyPEMType, Bytes: pubDER})

	wrapped, err := v.wrap(der)
	if err != nil {
		return "", nil, err
	}

	return string(publicPEM), wrapped, nil
}

func (v *keyVault) EncryptPrivateKey(wrapped []byte, password, salt string) (string, string, error) {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return "", "", errors.New("invalid key salt")
	}

	key := deriveKey(password, saltBytes, v.iterations)
	defer clear(key)

	iv, err := randomBytes(IVLength)
	if err != nil {
		return "", "", err
	}

	gcm, err := newGCM(key, IVLength)
	if err != nil {
		return "", "", err
	}

	out := gcm.Seal(nil, iv, wrapped, nil)
	ct, tag := out[:len(out)-tagLength], out[len(out)-tagLength:]

	return hex.EncodeToString(ct) + encryptedSeparator + hex.EncodeToString(tag), hex.EncodeToString(iv), nil
}

func (v *keyVault) DecryptPrivateKey(blob, password, salt, iv string) (*rsa.PrivateKey, error) {
	wrapped, err := v.decryptOuter(blob, password, salt, iv)
	if err != nil {
		return nil, err
	}
	defer clear(wrapped)

	der, err := v.unwrap(wrapped)
	if err != nil {
		return nil, err
	}
	defer clear(der)

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrDecryptionFailed
	}

	return key, nil
}

func (v *keyVault) ReencryptPrivateKey(blob, oldPassword, salt, iv, newPassword string) (string, string, string, error) {
	wrapped, err := v.decryptOuter(blob, oldPassword, salt, iv)
	if err != nil {
		return "", "", "", err
	}
	defer clear(wrapped)

	newSalt, err := randomHex(SaltLength)
	if err != nil {
		return "", "", "", err
	}

	newBlob, newIV, err := v.EncryptPrivateKey(wrapped, newPassword, newSalt)
	if err != nil {
		return "", "", "", err
	}

	return newBlob, newSalt, newIV, nil
}

func (v *keyVault) WithPrivateKey(blob, password, salt, iv string, fn func(*rsa.PrivateKey) error) error {
	key, err := v.DecryptPrivateKey(blob, password, salt, iv)
	if err != nil {
		return err
	}
	defer zeroPrivateKey(key)

	return fn(key)
}

func (v *keyVault) Sign(key *rsa.PrivateKey, message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	sig, err := rsa.SignPSS(rand.Reader, key, stdcrypto.SHA256, digest[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
	})
	if err != nil {
		return nil, fmt.Errorf("error signing message: %w", err)
	}
	return sig, nil
}

func (v *keyVault) VerifySignature(publicPEM string, message, signature []byte) error {
	pub, err := ParsePublicKey(publicPEM)
	if err != nil {
		return err
	}

	digest := sha256.Sum256(message)
	if err := rsa.VerifyPSS(pub, stdcrypto.SHA256, digest[:], signature, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return nil
}

func (v *keyVault) SealSecret(plaintext string) (string, error) {
	salt, err := randomBytes(vaultSaltLength)
	if err != nil {
		return "", err
	}
	key, err := v.vaultKey(salt, sealInfo)
	if err != nil {
		return "", err
	}
	defer clear(key)

	gcm, err := newGCM(key, 12)
	if err != nil {
		return "", err
	}
	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return "", err
	}

	ct := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return strings.Join([]string{
		hex.EncodeToString(salt),
		hex.EncodeToString(nonce),
		hex.EncodeToString(ct),
	}, sealSeparator), nil
}

func (v *keyVault) OpenSecret(sealed string) (string, error) {
	parts := strings.Split(sealed, sealSeparator)
	if len(parts) != 3 {
		return "", ErrDecryptionFailed
	}
	salt, err1 := hex.DecodeString(parts[0])
	nonce, err2 := hex.DecodeString(parts[1])
	ct, err3 := hex.DecodeString(parts[2])
	if err := errors.Join(err1, err2, err3); err != nil {
		return "", ErrDecryptionFailed
	}

	key, err := v.vaultKey(salt, sealInfo)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	defer clear(key)

	gcm, err := newGCM(key, 12)
	if err != nil || len(nonce) != gcm.NonceSize() {
		return "", ErrDecryptionFailed
	}
	plain, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plain), nil
}

// ParsePublicKey decodes a PKIX "PUBLIC KEY" PEM block holding an RSA key.
func ParsePublicKey(publicPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicPEM))
	if block == nil || block.Type != publicKeyPEMType {
		return nil, ErrInvalidPublicKey
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, ErrInvalidPublicKey
	}
	return pub, nil
}

func (v *keyVault) decryptOuter(blob, password, salt, iv string) ([]byte, error) {
	ctHex, tagHex, ok := strings.Cut(blob, encryptedSeparator)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	ct, err1 := hex.DecodeString(ctHex)
	tag, err2 := hex.DecodeString(tagHex)
	ivBytes, err3 := hex.DecodeString(iv)
	saltBytes, err4 := hex.DecodeString(salt)
	if errors.Join(err1, err2, err3, err4) != nil ||
		len(tag) != tagLength || len(ivBytes) != IVLength || len(saltBytes) == 0 {
		return nil, ErrDecryptionFailed
	}

	key := deriveKey(password, saltBytes, v.iterations)
	defer clear(key)

	gcm, err := newGCM(key, IVLength)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	sealed := make([]byte, 0, len(ct)+len(tag))
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plain, err := gcm.Open(nil, ivBytes, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}

// wrap seals a PKCS#8 private key with the vault key and returns a PEM
// block carrying the HKDF salt and nonce as headers.
func (v *keyVault) wrap(der []byte) ([]byte, error) {
	salt, err := randomBytes(vaultSaltLength)
	if err != nil {
		return nil, err
	}
	key, err := v.vaultKey(salt, wrapInfo)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	gcm, err := newGCM(key, 12)
	if err != nil {
		return nil, err
	}
	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{
		Type: wrappedKeyPEMType,
		Headers: map[string]string{
			"Salt":  hex.EncodeToString(salt),
			"Nonce": hex.EncodeToString(nonce),
		},
		Bytes: gcm.Seal(nil, nonce, der, []byte(wrappedKeyPEMType)),
	}), nil
}

func (v *keyVault) unwrap(wrapped []byte) ([]byte, error) {
	block, _ := pem.Decode(wrapped)
	if block == nil || block.Type != wrappedKeyPEMType {
		return nil, ErrDecryptionFailed
	}
	salt, err1 := hex.DecodeString(block.Headers["Salt"])
	nonce, err2 := hex.DecodeString(block.Headers["Nonce"])
	if errors.Join(err1, err2) != nil {
		return nil, ErrDecryptionFailed
	}

	key, err := v.vaultKey(salt, wrapInfo)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer clear(key)

	gcm, err := newGCM(key, 12)
	if err != nil || len(nonce) != gcm.NonceSize() {
		return nil, ErrDecryptionFailed
	}

	der, err := gcm.Open(nil, nonce, block.Bytes, []byte(wrappedKeyPEMType))
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return der, nil
}

func (v *keyVault) vaultKey(salt []byte, info string) ([]byte, error) {
	key := make([]byte, vaultKeyLength)
	if _, err := io.ReadFull(hkdf.New(sha512.New, v.passphrase, salt, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("error deriving vault key: %w", err)
	}
	return key, nil
}

func newGCM(key []byte, nonceSize int) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}
	if nonceSize == 12 {
		return cipher.NewGCM(block)
	}
	return cipher.NewGCMWithNonceSize(block, nonceSize)
}

// zeroPrivateKey overwrites the private exponent, primes and CRT values.
func zeroPrivateKey(key *rsa.PrivateKey) {
	if key == nil {
		return
	}
	if key.D != nil {
		clear(key.D.Bits())
	}
	for _, p := range key.Primes {
		if p != nil {
			clear(p.Bits())
		}
	}
	for _, n := range []*big.Int{key.Precomputed.Dp, key.Precomputed.Dq, key.Precomputed.Qinv} {
		if n != nil {
			clear(n.Bits())
		}
	}
}
