// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// transport layer of the identity service.
//
// All Msg* constants are public message strings written into HTTP response
// bodies. Keeping them in one place keeps the wording of the API stable and
// stops internal error text from leaking into responses.
package app

const (
	// MsgInvalidCredentials answers both a wrong password and a locked
	// account, so callers cannot tell the two apart.
	MsgInvalidCredentials = "invalid credentials"

	// MsgUnauthorized answers failed partner, emergency and bearer header
	// checks.
	MsgUnauthorized = "unauthorized"

	// MsgNotFound answers unknown routes and unsupported methods.
	MsgNotFound = "not found"

	// MsgInternalServerError answers unexpected server-side failures.
	MsgInternalServerError = "internal server error"
)
