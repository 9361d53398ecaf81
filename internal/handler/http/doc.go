// Package http implements the HTTP transport layer of the identity service.
//
// It exposes route wiring, request handlers and the middleware chain of the
// REST API: request tracing, access logging, response compression, bearer
// token authentication, permission checks, partner request signatures and
// the emergency gate rate limiter. Service sentinel errors are mapped to
// HTTP statuses in errors_mapper.go.
package http
