// Package api is the request gateway: it builds JSON requests against the
// configured base URL, decorates authorized calls with the bearer token and
// device-id headers, and normalizes every failure into *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/cjsavings/savings-client/internal/common"
	"github.com/cjsavings/savings-client/internal/logging"
)

// TokenSource yields the current session token ("" when no session).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// DeviceIDSource yields the stable per-installation device identifier.
type DeviceIDSource interface {
	DeviceID(ctx context.Context) (string, error)
}

// Client issues requests against the savings backend.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	devices DeviceIDSource
	log     logging.Logger
}

// New builds a gateway over the given base URL. A nil httpc falls back to
// http.DefaultClient (the platform's default timeout behavior).
func New(baseURL string, httpc *http.Client, tokens TokenSource, devices DeviceIDSource, log logging.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		httpc:   httpc,
		tokens:  tokens,
		devices: devices,
		log:     log.With("component", "gateway"),
	}
}

// BaseURL returns the resolved base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request performs method on baseURL+path with an optional JSON body.
//
// Every call carries Content-Type: application/json; caller headers are
// merged on top and override defaults on key collision. The response body
// is parsed as JSON, with an unparseable body downgraded to an empty object
// so the HTTP status stays authoritative. Any non-2xx status is returned as
// *Error carrying the backend's message field when present.
func (c *Client) Request(ctx context.Context, method, path string, body any, hdr http.Header) (gjson.Result, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range hdr {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	c.log.Debug(ctx, "sending request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	payload := gjson.Parse("{}")
	if gjson.ValidBytes(raw) {
		payload = gjson.ParseBytes(raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := payload.Get("message").String()
		if message == "" {
			message = "request failed"
		}
		apiErr := &Error{
			Status:  resp.StatusCode,
			Code:    payload.Get("code").String(),
			Message: message,
		}
		c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", message)
		return payload, apiErr
	}

	return payload, nil
}

// Authorized performs Request with the bearer token and device-id headers
// attached. Both are computed fresh per call, so the headers always reflect
// the current session store and identity provider state. With no session
// the Authorization value is empty, mirroring the backend contract.
func (c *Client) Authorized(ctx context.Context, method, path string, body any, hdr http.Header) (gjson.Result, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return gjson.Result{}, err
	}
	deviceID, err := c.devices.DeviceID(ctx)
	if err != nil {
		return gjson.Result{}, err
	}

	merged := hdr.Clone()
	if merged == nil {
		merged = http.Header{}
	}
	bearer := ""
	if token != "" {
		bearer = "Bearer " + token
	}
	merged.Set(common.HeaderAuthorization, bearer)
	merged.Set(common.HeaderDeviceID, deviceID)

	return c.Request(ctx, method, path, body, merged)
}
