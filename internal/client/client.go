// Package client talks to a remote configd over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"gateway-config/internal/model"
	"gateway-config/internal/negotiation"
)

// Defaults applied by New.
const (
	DefaultBaseURL    = "http://localhost:8080"
	DefaultTimeout    = 15 * time.Second
	DefaultSDKVersion = "4.39.0"
	DefaultPlatform   = "configctl"
)

// Config configures a Client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	SDKVersion string
	Platform   string

	// Transport replaces the default round tripper when set.
	Transport http.RoundTripper
}

// Client is a configd API client. Safe for concurrent use.
type Client struct {
	http      *resty.Client
	sdkClient string
}

// New creates a Client. Zero Config fields fall back to the defaults.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SDKVersion == "" {
		cfg.SDKVersion = DefaultSDKVersion
	}
	if cfg.Platform == "" {
		cfg.Platform = DefaultPlatform
	}

	header, err := negotiation.FormatSDKClientHeader(cfg.SDKVersion, cfg.Platform)
	if err != nil {
		return nil, fmt.Errorf("sdk client header: %w", err)
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader(negotiation.SDKClientHeader, header)
	if cfg.Transport != nil {
		cli.SetTransport(cfg.Transport)
	}

	return &Client{http: cli, sdkClient: header}, nil
}

// SDKClient returns the SDK-Client header value sent on every request.
func (c *Client) SDKClient() string {
	return c.sdkClient
}

// Parse submits a configuration document and returns its summary.
// A rejected document yields an error wrapping model.ErrUnparseable.
func (c *Client) Parse(ctx context.Context, doc []byte, features ...string) (*model.Summary, error) {
	req, err := c.request(ctx, features)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Post("/configurations/parse")
	if err != nil {
		return nil, model.NewUpstreamError("configd", err)
	}

	var summary model.Summary
	if err := decode(resp, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Summary fetches the summary of a merchant's installed configuration.
func (c *Client) Summary(ctx context.Context, merchantID string, features ...string) (*model.Summary, error) {
	req, err := c.request(ctx, features)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParam("id", merchantID).
		Get("/merchants/{id}/summary")
	if err != nil {
		return nil, model.NewUpstreamError("configd", err)
	}

	var summary model.Summary
	if err := decode(resp, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Document fetches a merchant's configuration document exactly as installed.
func (c *Client) Document(ctx context.Context, merchantID string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", merchantID).
		Get("/merchants/{id}/configuration")
	if err != nil {
		return nil, model.NewUpstreamError("configd", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// FeatureEnabled reports whether a GraphQL feature is enabled for a merchant.
func (c *Client) FeatureEnabled(ctx context.Context, merchantID, feature string) (bool, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"id": merchantID, "feature": feature}).
		Get("/merchants/{id}/features/{feature}")
	if err != nil {
		return false, model.NewUpstreamError("configd", err)
	}

	var result struct {
		Enabled bool `json:"enabled"`
	}
	if err := decode(resp, &result); err != nil {
		return false, err
	}
	return result.Enabled, nil
}

// Merchants lists merchants with an installed configuration.
func (c *Client) Merchants(ctx context.Context) ([]string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/merchants")
	if err != nil {
		return nil, model.NewUpstreamError("configd", err)
	}

	var result struct {
		Merchants []string `json:"merchants"`
	}
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Merchants, nil
}

// request starts a request carrying the GraphQL-Features header when
// features are given.
func (c *Client) request(ctx context.Context, features []string) (*resty.Request, error) {
	req := c.http.R().SetContext(ctx)
	if len(features) == 0 {
		return req, nil
	}

	header, err := negotiation.FormatGraphQLFeaturesHeader(features)
	if err != nil {
		return nil, model.NewValidationError("feature", err.Error())
	}
	return req.SetHeader(negotiation.GraphQLFeaturesHeader, header), nil
}

// decode maps error responses and unmarshals successful ones into v.
func decode(resp *resty.Response, v any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return model.NewUpstreamError("configd", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// errorEnvelope mirrors the server's error response.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// mapHTTPError converts a non-2xx response into an *model.APIError whose
// wrapped sentinel reflects the failure class.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	var env errorEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil || env.Error.Code == "" {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(status)
		}
		return &model.APIError{
			Code:       "UPSTREAM_ERROR",
			Message:    fmt.Sprintf("http %d: %s", status, body),
			StatusCode: status,
			Err:        model.ErrUpstreamError,
		}
	}

	return &model.APIError{
		Code:       env.Error.Code,
		Message:    env.Error.Message,
		StatusCode: status,
		Err:        sentinelFor(status, env.Error.Code),
	}
}

func sentinelFor(status int, code string) error {
	switch {
	case code == negotiation.SDKClientRequired,
		code == negotiation.SDKVersionUnsupported,
		status == http.StatusUpgradeRequired:
		return model.ErrUnsupportedClient
	case status == http.StatusNotFound:
		return model.ErrNotFound
	case status == http.StatusUnprocessableEntity:
		return model.ErrUnparseable
	case status >= 400 && status < 500:
		return model.ErrInvalidRequest
	default:
		return model.ErrUpstreamError
	}
}
