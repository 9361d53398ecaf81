// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":            "jwt_secret",
		"APP_TOKEN_ISSUER":              "test_issuer",
		"APP_TOKEN_DURATION":            "1h",
		"APP_CHALLENGE_DURATION":        "2m",
		"APP_VAULT_PASSPHRASE":          "vault_secret",
		"APP_LOCKOUT_THRESHOLD":         "7",
		"APP_LOCKOUT_DURATION":          "15m",
		"APP_OTP_LENGTH":                "8",
		"APP_OTP_TTL":                   "3m",
		"APP_PARTNER_REPLAY_WINDOW":     "1m",
		"APP_PARTNER_AUTH_TIMEOUT":      "500ms",
		"APP_EMERGENCY_RATE_PER_MINUTE": "20",
		"APP_EMERGENCY_BURST":           "4",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_GRPC_ADDRESS":    "localhost:9090",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_TRUSTED_PROXIES": "10.0.0.0/8,192.0.2.10",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:identity.db",

		"ADAPTER_NOTIFICATION_URL":   "http://notify.local/send",
		"ADAPTER_NOTIFICATION_TOKEN": "notify_token",

		"WORKERS_AUDIT_QUEUE_SIZE":   "64",
		"WORKERS_CRYPTO_CONCURRENCY": "3",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 2*time.Minute, cfg.App.ChallengeDuration)
	assert.Equal(t, "vault_secret", cfg.App.VaultPassphrase)
	assert.Equal(t, 7, cfg.App.LockoutThreshold)
	assert.Equal(t, 15*time.Minute, cfg.App.LockoutDuration)
	assert.Equal(t, 8, cfg.App.OTPLength)
	assert.Equal(t, 3*time.Minute, cfg.App.OTPTTL)
	assert.Equal(t, time.Minute, cfg.App.PartnerReplayWindow)
	assert.Equal(t, 500*time.Millisecond, cfg.App.PartnerAuthTimeout)
	assert.Equal(t, 20, cfg.App.EmergencyRatePerMinute)
	assert.Equal(t, 4, cfg.App.EmergencyBurst)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.10"}, cfg.Server.TrustedProxies)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:identity.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http://notify.local/send", cfg.Adapter.NotificationURL)
	assert.Equal(t, "notify_token", cfg.Adapter.NotificationToken)

	assert.Equal(t, 64, cfg.Workers.AuditQueueSize)
	assert.Equal(t, 3, cfg.Workers.CryptoConcurrency)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.Empty(t, cfg.App.VaultPassphrase)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_DURATION": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_LOCKOUT_THRESHOLD": "five"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_TOKEN_DURATION",
	"APP_CHALLENGE_DURATION",
	"APP_VAULT_PASSPHRASE",
	"APP_LOCKOUT_THRESHOLD",
	"APP_LOCKOUT_DURATION",
	"APP_OTP_LENGTH",
	"APP_OTP_TTL",
	"APP_PARTNER_REPLAY_WINDOW",
	"APP_PARTNER_AUTH_TIMEOUT",
	"APP_EMERGENCY_RATE_PER_MINUTE",
	"APP_EMERGENCY_BURST",
	"APP_LOG_LEVEL",
	"APP_VERSION",

	"SERVER_ADDRESS",
	"SERVER_GRPC_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_TRUSTED_PROXIES",

	"STORAGE_DB_DRIVER",
	"STORAGE_DB_DATABASE_URI",

	"ADAPTER_NOTIFICATION_URL",
	"ADAPTER_NOTIFICATION_TOKEN",
	"ADAPTER_REQUEST_TIMEOUT",

	"WORKERS_AUDIT_QUEUE_SIZE",
	"WORKERS_AUDIT_WORKERS",
	"WORKERS_AUDIT_MAX_RETRIES",
	"WORKERS_AUDIT_RETRY_BASE",
	"WORKERS_CRYPTO_CONCURRENCY",
	"WORKERS_KEYGEN_CONCURRENCY",
	"WORKERS_HEALTH_INTERVAL",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if v, ok := os.LookupEnv(k); ok {
			_ = os.Unsetenv(k)
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}
