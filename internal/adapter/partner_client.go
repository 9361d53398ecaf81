package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
)

// PartnerCredentials identifies a partner towards the partner API.
type PartnerCredentials struct {
	APIKey    string
	APISecret string
}

type httpPartnerClient struct {
	client *utils.HTTPClient
	creds  PartnerCredentials
	now    func() time.Time
}

// NewPartnerClient constructs a [PartnerClient] for the API at baseURL.
// Requests are not retried: a retried request would carry a stale
// timestamp.
func NewPartnerClient(baseURL string, creds PartnerCredentials, timeout time.Duration) (PartnerClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid partner api address: %w", err)
	}

	return &httpPartnerClient{
		client: utils.NewHTTPClient(normalized, timeout, 0),
		creds:  creds,
		now:    time.Now,
	}, nil
}

// Do implements [PartnerClient]. The signature covers
// method || path || unix-seconds timestamp || body.
func (c *httpPartnerClient) Do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	ts := strconv.FormatInt(c.now().Unix(), 10)
	signature := utils.SignHMAC(utils.PartnerMessage(method, path, ts, body), []byte(c.creds.APISecret))

	req := c.client.R().
		SetContext(ctx).
		SetHeader(utils.HeaderAPIKey, c.creds.APIKey).
		SetHeader(utils.HeaderSignature, signature).
		SetHeader(utils.HeaderTimestamp, ts)
	if len(body) > 0 {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return 0, nil, fmt.Errorf("partner request %s %s: %w", method, path, err)
	}

	return resp.StatusCode(), resp.Body(), nil
}

// VerifyIdentity implements [PartnerClient].
func (c *httpPartnerClient) VerifyIdentity(ctx context.Context, userUUID string) (models.VerifyIdentityResponse, error) {
	var out models.VerifyIdentityResponse
	err := c.call(ctx, http.MethodPost, "/api/partner/verify-identity", models.VerifyIdentityRequest{UserUUID: userUUID}, &out)
	return out, err
}

// CheckAuthorization implements [PartnerClient].
func (c *httpPartnerClient) CheckAuthorization(ctx context.Context, userUUID string, serviceID int64) (models.AuthorizationCheck, error) {
	var out models.AuthorizationCheck
	err := c.call(ctx, http.MethodPost, "/api/partner/check-authorization",
		models.CheckAuthorizationRequest{UserUUID: userUUID, ServiceID: serviceID}, &out)
	return out, err
}

// PublicKey implements [PartnerClient].
func (c *httpPartnerClient) PublicKey(ctx context.Context, userUUID string) (models.PublicKeyResponse, error) {
	var out models.PublicKeyResponse
	err := c.call(ctx, http.MethodGet, "/api/partner/users/"+userUUID+"/public-key", nil, &out)
	return out, err
}

func (c *httpPartnerClient) call(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode partner request: %w", err)
		}
	}

	status, respBody, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if err = statusError(status, respBody); err != nil {
		return err
	}

	if err = json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode partner response: %w", err)
	}

	return nil
}
