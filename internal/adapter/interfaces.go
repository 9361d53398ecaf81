// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the identity service.
//
// [Notifier] hands one-time passwords to the notification gateway (or only
// logs them when no gateway is configured). [PartnerClient] is the signing
// HTTP client a government partner uses against the partner API; it backs
// the partner-client command and the protocol round-trip tests.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-identity-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Notifier delivers one-time passwords to users.
type Notifier interface {
	// SendOTP delivers otp over the channel named by otp.Type. Codes of type
	// "app" are generated by the user's authenticator and need no delivery.
	SendOTP(ctx context.Context, user models.User, otp models.OTPCode) error
}

// PartnerClient calls the partner API with signed requests.
type PartnerClient interface {
	// Do signs and sends a raw request and returns the status code and body
	// of the response without mapping errors.
	Do(ctx context.Context, method, path string, body []byte) (int, []byte, error)

	VerifyIdentity(ctx context.Context, userUUID string) (models.VerifyIdentityResponse, error)
	CheckAuthorization(ctx context.Context, userUUID string, serviceID int64) (models.AuthorizationCheck, error)
	PublicKey(ctx context.Context, userUUID string) (models.PublicKeyResponse, error)
}
