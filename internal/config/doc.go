// Package config provides configuration loading, merging, and validation
// facilities for the identity service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Unset tunables receive defaults (24h tokens, 5 attempts / 30m lockout,
// 6-digit OTPs valid 10m, 5m partner replay window). The entry point is
// [GetStructuredConfig].
package config
