// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingClaims is returned when a protected handler runs without the
	// claims the auth middleware places in the context.
	ErrMissingClaims = errors.New("no claims in request context")

	// ErrMissingPartner is returned when a partner handler runs without the
	// partner placed by the signature middleware.
	ErrMissingPartner = errors.New("no partner in request context")

	// ErrInvalidPathParameter is returned when a numeric URL parameter
	// cannot be parsed.
	ErrInvalidPathParameter = errors.New("invalid path parameter")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrUnreadableBody is returned when the request body cannot be read,
	// for example after a client disconnect.
	ErrUnreadableBody = errors.New("request body could not be read")

	// ErrRateLimited is returned when the emergency gate limiter rejects a
	// request.
	ErrRateLimited = errors.New("too many requests")
)
