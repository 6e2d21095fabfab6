// FILE: src/internal/slack/client.go
package slack

import (
	"encoding/json"
	"fmt"
	"time"

	"vatnotify/src/internal/version"

	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// Client delivers notification payloads to a webhook endpoint.
type Client struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
	logger  *log.Logger
}

// NewClient creates a webhook client for the given URL.
func NewClient(url string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		url:     url,
		timeout: timeout,
		logger:  logger,
		client: &fasthttp.Client{
			MaxConnsPerHost: 2,
			ReadTimeout:     timeout,
			WriteTimeout:    timeout,
		},
	}
}

// Encode serializes a message to its wire form.
func Encode(msg Message) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return body, nil
}

// Post sends an already encoded payload with a single blocking request
// and returns the HTTP status code. Taking the wire bytes keeps them
// identical to what the caller printed. A transport error or non-2xx
// status is an error; there is no retry.
func (c *Client) Post(body []byte) (int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json; charset=utf-8")
	req.Header.SetContentLength(len(body))
	req.Header.SetUserAgent(fmt.Sprintf("vatnotify/%s", version.Short()))
	req.SetBody(body)

	c.logger.Debug("msg", "Posting notification",
		"component", "slack_client",
		"body_bytes", len(body))

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		return 0, fmt.Errorf("webhook request failed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return status, fmt.Errorf("webhook returned status %d: %s", status, resp.Body())
	}

	c.logger.Info("msg", "Notification delivered",
		"component", "slack_client",
		"status_code", status)
	return status, nil
}
