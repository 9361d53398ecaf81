package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
)

// otpPath is appended to the gateway URL.
const otpPath = "/otp"

// otpMessage is the body posted to the notification gateway.
type otpMessage struct {
	Channel   models.OTPType    `json:"channel"`
	Recipient string            `json:"recipient"`
	Code      string            `json:"code"`
	Purpose   models.OTPPurpose `json:"purpose"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type httpNotifier struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

type logNotifier struct {
	logger *logger.Logger
}

// NewNotifier returns a gateway-backed [Notifier] when cfg.NotificationURL
// is set, and a log-only one otherwise.
func NewNotifier(cfg config.Adapter, log *logger.Logger) (Notifier, error) {
	if strings.TrimSpace(cfg.NotificationURL) == "" {
		log.Warn().Str("func", "NewNotifier").Msg("notification url is not set, otp codes will only be logged")
		return &logNotifier{logger: log}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.NotificationURL)
	if err != nil {
		return nil, fmt.Errorf("invalid notification url: %w", err)
	}

	return &httpNotifier{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout, 2),
		token:  cfg.NotificationToken,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// recipient picks the address of user for channel t.
func recipient(user models.User, t models.OTPType) (string, error) {
	switch t {
	case models.OTPTypeEmail:
		if user.Email == "" {
			return "", ErrNoRecipient
		}
		return user.Email, nil
	case models.OTPTypeSMS:
		if user.Phone == "" {
			return "", ErrNoRecipient
		}
		return user.Phone, nil
	default:
		return "", nil
	}
}

// SendOTP implements [Notifier]. It posts the code to POST {url}/otp with
// the configured bearer token. Transport errors and 5xx responses are
// retried by the underlying client; anything still failing is reported as
// [ErrDeliveryFailed].
func (n *httpNotifier) SendOTP(ctx context.Context, user models.User, otp models.OTPCode) error {
	if otp.Type == models.OTPTypeApp {
		return nil
	}

	to, err := recipient(user, otp.Type)
	if err != nil {
		return err
	}

	req := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(otpMessage{
			Channel:   otp.Type,
			Recipient: to,
			Code:      otp.Code,
			Purpose:   otp.Purpose,
			ExpiresAt: otp.ExpiresAt,
		})
	if n.token != "" {
		req.SetAuthToken(n.token)
	}

	resp, err := req.Post(otpPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpNotifier.SendOTP").Msg("notification gateway unreachable")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpNotifier.SendOTP").Msg("notification gateway rejected otp")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return nil
}

// SendOTP implements [Notifier] for deployments without a gateway.
func (n *logNotifier) SendOTP(ctx context.Context, user models.User, otp models.OTPCode) error {
	if otp.Type == models.OTPTypeApp {
		return nil
	}

	if _, err := recipient(user, otp.Type); err != nil {
		return err
	}

	n.logger.Debug().
		Str("func", "*logNotifier.SendOTP").
		Str("user_uuid", user.UUID).
		Str("channel", string(otp.Type)).
		Str("purpose", string(otp.Purpose)).
		Str("code", otp.Code).
		Msg("otp issued without delivery gateway")

	return nil
}
