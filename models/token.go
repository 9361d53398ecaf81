package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose distinguishes session tokens from short-lived step tokens.
type TokenPurpose string

const (
	// TokenPurposeSession marks a regular bearer token.
	TokenPurposeSession TokenPurpose = ""
	// TokenPurposeOTPChallenge marks the token handed out after a correct
	// password when a second factor is still pending.
	TokenPurposeOTPChallenge TokenPurpose = "otp_challenge"
)

// Claims is the JWT payload issued by the token issuer.
//
// RegisteredClaims carries iss, sub, iat, exp and jti; the remaining fields
// are private claims describing the subject.
type Claims struct {
	jwt.RegisteredClaims

	UserID  int64        `json:"user_id"`
	UUID    string       `json:"uuid"`
	Role    Role         `json:"role"`
	Version int64        `json:"ver"`
	Purpose TokenPurpose `json:"purpose,omitempty"`
}

// Token wraps a signed JWT together with the claims it was built from.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
