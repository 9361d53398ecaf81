package crypto

import (
	"crypto/rsa"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassphrase = "operator-passphrase"
	testPassword   = "S3cure!pass"
)

func newTestVault(passphrase string) KeyVault {
	return NewKeyVault(passphrase, WithKeyBits(2048), WithIterations(1000))
}

// testKeyPair generates one key pair for the whole package; RSA generation
// dominates test time.
var testKeyPair = sync.OnceValues(func() (string, []byte) {
	pub, wrapped, err := newTestVault(testPassphrase).GenerateKeyPair()
	if err != nil {
		panic(err)
	}
	return pub, wrapped
})

func encryptTestKey(t *testing.T, v KeyVault, password string) (blob, salt, iv string) {
	t.Helper()
	_, wrapped := testKeyPair()
	salt, err := NewCredentialManager().GenerateSalt()
	require.NoError(t, err)
	blob, iv, err = v.EncryptPrivateKey(wrapped, password, salt)
	require.NoError(t, err)
	return blob, salt, iv
}

func TestGenerateKeyPair_Format(t *testing.T) {
	pub, wrapped := testKeyPair()

	assert.True(t, strings.HasPrefix(pub, "-----BEGIN PUBLIC KEY-----"))
	assert.Contains(t, string(wrapped), "WRAPPED PRIVATE KEY")
	assert.NotContains(t, string(wrapped), "BEGIN PRIVATE KEY")

	key, err := ParsePublicKey(pub)
	require.NoError(t, err)
	assert.Equal(t, 2048, key.N.BitLen())
}

func TestEncryptPrivateKey_OutputShape(t *testing.T) {
	v := newTestVault(testPassphrase)
	blob, _, iv := encryptTestKey(t, v, testPassword)

	ctHex, tagHex, ok := strings.Cut(blob, ":")
	require.True(t, ok)
	_, err := hex.DecodeString(ctHex)
	require.NoError(t, err)
	tag, err := hex.DecodeString(tagHex)
	require.NoError(t, err)
	assert.Len(t, tag, 16)

	ivBytes, err := hex.DecodeString(iv)
	require.NoError(t, err)
	assert.Len(t, ivBytes, IVLength)
}

func TestDecryptPrivateKey_RoundTrip(t *testing.T) {
	v := newTestVault(testPassphrase)
	pub, _ := testKeyPair()
	blob, salt, iv := encryptTestKey(t, v, testPassword)

	key, err := v.DecryptPrivateKey(blob, testPassword, salt, iv)
	require.NoError(t, err)

	pubKey, err := ParsePublicKey(pub)
	require.NoError(t, err)
	assert.True(t, pubKey.Equal(&key.PublicKey))
}

func TestDecryptPrivateKey_Failures(t *testing.T) {
	v := newTestVault(testPassphrase)
	blob, salt, iv := encryptTestKey(t, v, testPassword)
	otherSalt, err := NewCredentialManager().GenerateSalt()
	require.NoError(t, err)

	ctHex, tagHex, _ := strings.Cut(blob, ":")
	flipped := []byte(ctHex)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}

	tests := []struct {
		name     string
		vault    KeyVault
		blob     string
		password string
		salt     string
		iv       string
	}{
		{name: "wrong password", vault: v, blob: blob, password: "wrong", salt: salt, iv: iv},
		{name: "wrong salt", vault: v, blob: blob, password: testPassword, salt: otherSalt, iv: iv},
		{name: "tampered ciphertext", vault: v, blob: string(flipped) + ":" + tagHex, password: testPassword, salt: salt, iv: iv},
		{name: "missing tag", vault: v, blob: ctHex, password: testPassword, salt: salt, iv: iv},
		{name: "short iv", vault: v, blob: blob, password: testPassword, salt: salt, iv: "abcd"},
		{name: "non hex", vault: v, blob: "zz:zz", password: testPassword, salt: salt, iv: iv},
		{name: "other operator passphrase", vault: newTestVault("another-passphrase"), blob: blob, password: testPassword, salt: salt, iv: iv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := tt.vault.DecryptPrivateKey(tt.blob, tt.password, tt.salt, tt.iv)
			assert.Nil(t, key)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
		})
	}
}

func TestReencryptPrivateKey(t *testing.T) {
	v := newTestVault(testPassphrase)
	pub, _ := testKeyPair()
	blob, salt, iv := encryptTestKey(t, v, testPassword)

	newBlob, newSalt, newIV, err := v.ReencryptPrivateKey(blob, testPassword, salt, iv, "N3w!password")
	require.NoError(t, err)
	assert.NotEqual(t, salt, newSalt)
	assert.NotEqual(t, iv, newIV)

	_, err = v.DecryptPrivateKey(newBlob, testPassword, newSalt, newIV)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	key, err := v.DecryptPrivateKey(newBlob, "N3w!password", newSalt, newIV)
	require.NoError(t, err)
	pubKey, err := ParsePublicKey(pub)
	require.NoError(t, err)
	assert.True(t, pubKey.Equal(&key.PublicKey))
}

func TestReencryptPrivateKey_WrongOldPassword(t *testing.T) {
	v := newTestVault(testPassphrase)
	blob, salt, iv := encryptTestKey(t, v, testPassword)

	_, _, _, err := v.ReencryptPrivateKey(blob, "wrong", salt, iv, "new")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestWithPrivateKey_ZeroesKeyAfterUse(t *testing.T) {
	v := newTestVault(testPassphrase)
	blob, salt, iv := encryptTestKey(t, v, testPassword)

	var captured *rsa.PrivateKey
	err := v.WithPrivateKey(blob, testPassword, salt, iv, func(key *rsa.PrivateKey) error {
		captured = key
		assert.NotZero(t, key.D.Sign())
		return nil
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	for _, w := range captured.D.Bits() {
		assert.Zero(t, w)
	}
	for _, p := range captured.Primes {
		for _, w := range p.Bits() {
			assert.Zero(t, w)
		}
	}
}

func TestWithPrivateKey_PropagatesCallbackError(t *testing.T) {
	v := newTestVault(testPassphrase)
	blob, salt, iv := encryptTestKey(t, v, testPassword)
	boom := errors.New("boom")

	err := v.WithPrivateKey(blob, testPassword, salt, iv, func(*rsa.PrivateKey) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestWithPrivateKey_WrongPasswordSkipsCallback(t *testing.T) {
	v := newTestVault(testPassphrase)
	blob, salt, iv := encryptTestKey(t, v, testPassword)

	called := false
	err := v.WithPrivateKey(blob, "wrong", salt, iv, func(*rsa.PrivateKey) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.False(t, called)
}

func TestSignAndVerify(t *testing.T) {
	v := newTestVault(testPassphrase)
	pub, _ := testKeyPair()
	blob, salt, iv := encryptTestKey(t, v, testPassword)
	message := []byte("I consent to share my address with the tax office")

	var sig []byte
	err := v.WithPrivateKey(blob, testPassword, salt, iv, func(key *rsa.PrivateKey) error {
		var err error
		sig, err = v.Sign(key, message)
		return err
	})
	require.NoError(t, err)

	assert.NoError(t, v.VerifySignature(pub, message, sig))
	assert.ErrorIs(t, v.VerifySignature(pub, []byte("tampered"), sig), ErrInvalidSignature)
	assert.ErrorIs(t, v.VerifySignature("garbage", message, sig), ErrInvalidPublicKey)
}

func TestSealAndOpenSecret(t *testing.T) {
	v := newTestVault(testPassphrase)

	sealed, err := v.SealSecret("partner-api-secret")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "partner-api-secret")

	again, err := v.SealSecret("partner-api-secret")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again)

	plain, err := v.OpenSecret(sealed)
	require.NoError(t, err)
	assert.Equal(t, "partner-api-secret", plain)

	_, err = newTestVault("other").OpenSecret(sealed)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = v.OpenSecret("not:sealed")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestZeroPrivateKey_Nil(t *testing.T) {
	assert.NotPanics(t, func() { zeroPrivateKey(nil) })
	assert.NotPanics(t, func() { zeroPrivateKey(&rsa.PrivateKey{D: big.NewInt(0)}) })
}
