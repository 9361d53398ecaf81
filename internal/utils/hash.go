package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
)

// SignHMAC returns the hex-encoded HMAC-SHA512 of data under key.
//
// Example usage:
//
//	sig := utils.SignHMAC([]byte("POST/api/partner/verify-identity1700000000{}"), secret)
func SignHMAC(data, key []byte) string {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// EqualHMAC compares two hex signatures in constant time. Signatures of
// different length are rejected before comparison.
func EqualHMAC(expected, provided string) bool {
	if len(expected) != len(provided) {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(provided))
}

// SHA256Hex returns the hex-encoded SHA-256 digest of s. It is used to
// store bearer secrets (emergency tokens) without keeping the plaintext.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// PartnerMessage builds the byte string a partner signs:
// method || path || timestamp || body, with no separators.
func PartnerMessage(method, path, timestamp string, body []byte) []byte {
	msg := make([]byte, 0, len(method)+len(path)+len(timestamp)+len(body))
	msg = append(msg, method...)
	msg = append(msg, path...)
	msg = append(msg, timestamp...)
	return append(msg, body...)
}
