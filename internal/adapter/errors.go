package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNoRecipient is returned when the user has no address for the
	// requested channel (e.g. an SMS code for a user without a phone).
	ErrNoRecipient = errors.New("no recipient for otp channel")

	// ErrDeliveryFailed wraps every failure of the notification gateway.
	ErrDeliveryFailed = errors.New("otp delivery failed")
)
