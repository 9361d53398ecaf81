// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. Hash and verify must agree on them.
const (
	PBKDF2Iterations = 100_000
	DerivedKeyLength = 32
	SaltLength       = 32
)

type credentialManager struct {
	iterations int
}

// NewCredentialManager returns a [CredentialManager] using PBKDF2-HMAC-SHA512
// with [PBKDF2Iterations] iterations.
func NewCredentialManager() CredentialManager {
	return &credentialManager{iterations: PBKDF2Iterations}
}

func (c *credentialManager) GenerateSalt() (string, error) {
	return randomHex(SaltLength)
}

func (c *credentialManager) HashPassword(password, salt string) (string, error) {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return "", fmt.Errorf("invalid salt: %w", ErrVerificationFailed)
	}

	return hex.EncodeToString(deriveKey(password, saltBytes, c.iterations)), nil
}

func (c *credentialManager) VerifyPassword(password, salt, storedHash string) (bool, error) {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return false, ErrVerificationFailed
	}
	expected, err := hex.DecodeString(storedHash)
	if err != nil || len(expected) != DerivedKeyLength {
		return false, ErrVerificationFailed
	}

	actual := deriveKey(password, saltBytes, c.iterations)
	defer clear(actual)

	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func deriveKey(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, DerivedKeyLength, sha512.New)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("error reading random bytes: %w", err)
	}
	return b, nil
}

func randomHex(n int) (string, error) {
	b, err := randomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
