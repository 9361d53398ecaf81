package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// may be written either as Go duration strings ("30s") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		TokenDuration          Duration `json:"token_duration"`
		ChallengeDuration      Duration `json:"challenge_duration"`
		VaultPassphrase        string   `json:"vault_passphrase"`
		LockoutThreshold       int      `json:"lockout_threshold"`
		LockoutDuration        Duration `json:"lockout_duration"`
		OTPLength              int      `json:"otp_length"`
		OTPTTL                 Duration `json:"otp_ttl"`
		PartnerReplayWindow    Duration `json:"partner_replay_window"`
		PartnerAuthTimeout     Duration `json:"partner_auth_timeout"`
		EmergencyRatePerMinute int      `json:"emergency_rate_per_minute"`
		EmergencyBurst         int      `json:"emergency_burst"`
		LogLevel               string   `json:"log_level"`
		Version                string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TrustedProxies []string `json:"trusted_proxies"`
	} `json:"server,omitempty"`

	Adapter struct {
		NotificationURL   string   `json:"notification_url"`
		NotificationToken string   `json:"notification_token"`
		RequestTimeout    Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		AuditQueueSize    int      `json:"audit_queue_size"`
		AuditWorkers      int      `json:"audit_workers"`
		AuditMaxRetries   int      `json:"audit_max_retries"`
		AuditRetryBase    Duration `json:"audit_retry_base"`
		CryptoConcurrency int      `json:"crypto_concurrency"`
		KeygenConcurrency int      `json:"keygen_concurrency"`
		HealthInterval    Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:           jsonCfg.App.TokenSignKey,
			TokenIssuer:            jsonCfg.App.TokenIssuer,
			TokenDuration:          time.Duration(jsonCfg.App.TokenDuration),
			ChallengeDuration:      time.Duration(jsonCfg.App.ChallengeDuration),
			VaultPassphrase:        jsonCfg.App.VaultPassphrase,
			LockoutThreshold:       jsonCfg.App.LockoutThreshold,
			LockoutDuration:        time.Duration(jsonCfg.App.LockoutDuration),
			OTPLength:              jsonCfg.App.OTPLength,
			OTPTTL:                 time.Duration(jsonCfg.App.OTPTTL),
			PartnerReplayWindow:    time.Duration(jsonCfg.App.PartnerReplayWindow),
			PartnerAuthTimeout:     time.Duration(jsonCfg.App.PartnerAuthTimeout),
			EmergencyRatePerMinute: jsonCfg.App.EmergencyRatePerMinute,
			EmergencyBurst:         jsonCfg.App.EmergencyBurst,
			LogLevel:               jsonCfg.App.LogLevel,
			Version:                jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TrustedProxies: jsonCfg.Server.TrustedProxies,
		},
		Adapter: Adapter{
			NotificationURL:   jsonCfg.Adapter.NotificationURL,
			NotificationToken: jsonCfg.Adapter.NotificationToken,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			AuditQueueSize:    jsonCfg.Workers.AuditQueueSize,
			AuditWorkers:      jsonCfg.Workers.AuditWorkers,
			AuditMaxRetries:   jsonCfg.Workers.AuditMaxRetries,
			AuditRetryBase:    time.Duration(jsonCfg.Workers.AuditRetryBase),
			CryptoConcurrency: jsonCfg.Workers.CryptoConcurrency,
			KeygenConcurrency: jsonCfg.Workers.KeygenConcurrency,
			HealthInterval:    time.Duration(jsonCfg.Workers.HealthInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
