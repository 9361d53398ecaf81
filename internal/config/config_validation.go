// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/utils"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// applyDefaults fills every unset tunable with its documented default.
func (cfg *StructuredConfig) applyDefaults() {
	app := &cfg.App
	if app.TokenIssuer == "" {
		app.TokenIssuer = "go-identity-vault"
	}
	if app.TokenDuration == 0 {
		app.TokenDuration = 24 * time.Hour
	}
	if app.ChallengeDuration == 0 {
		app.ChallengeDuration = 5 * time.Minute
	}
	if app.LockoutThreshold == 0 {
		app.LockoutThreshold = 5
	}
	if app.LockoutDuration == 0 {
		app.LockoutDuration = 30 * time.Minute
	}
	if app.OTPLength == 0 {
		app.OTPLength = 6
	}
	if app.OTPTTL == 0 {
		app.OTPTTL = 10 * time.Minute
	}
	if app.PartnerReplayWindow == 0 {
		app.PartnerReplayWindow = 5 * time.Minute
	}
	if app.PartnerAuthTimeout == 0 {
		app.PartnerAuthTimeout = 2 * time.Second
	}
	if app.EmergencyRatePerMinute == 0 {
		app.EmergencyRatePerMinute = 10
	}
	if app.EmergencyBurst == 0 {
		app.EmergencyBurst = 3
	}
	if app.Version == "" {
		app.Version = "dev"
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}

	w := &cfg.Workers
	if w.AuditQueueSize == 0 {
		w.AuditQueueSize = 1024
	}
	if w.AuditWorkers == 0 {
		w.AuditWorkers = 2
	}
	if w.AuditMaxRetries == 0 {
		w.AuditMaxRetries = 3
	}
	if w.AuditRetryBase == 0 {
		w.AuditRetryBase = 100 * time.Millisecond
	}
	if w.CryptoConcurrency == 0 {
		w.CryptoConcurrency = runtime.NumCPU()
	}
	if w.KeygenConcurrency == 0 {
		w.KeygenConcurrency = 1
	}
	if w.HealthInterval == 0 {
		w.HealthInterval = 15 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.VaultPassphrase == "" {
		return fmt.Errorf("%w: token sign key and vault passphrase are required", ErrInvalidAppConfigs)
	}
	if cfg.App.LockoutThreshold < 1 || cfg.App.OTPLength < 4 {
		return fmt.Errorf("%w: lockout threshold must be positive and OTP length at least 4", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}
	if _, err := utils.ParseTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}
