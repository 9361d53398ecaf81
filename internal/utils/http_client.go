package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client used for outbound calls
// (notification gateway, partner client).
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL. A zero
// timeout leaves resty's default. Transient failures (transport errors and
// 5xx responses) are retried up to retries times with resty's backoff.
func NewHTTPClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(retries).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
