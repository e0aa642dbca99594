package uos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// Client issues authenticated calls to the UOS services and normalizes their
// outcomes. Service-specific operations live in the passport and remoteconfig
// packages, which wrap a Client.
//
// A Client holds no package-level state; several clients with different
// configurations can be used side by side.
type Client struct {
	config *Config
	sender Sender
	creds  *Credentials
	logger hclog.Logger
}

// New creates a new Client. A nil cfg means DefaultConfig.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid uos client config: %w", err)
	}

	logger := cfg.Logger.Named("uos")

	sender := cfg.Sender
	if sender == nil {
		sender = NewHTTPSender(cfg.HTTPClient, logger)
	}

	return &Client{
		config: cfg,
		sender: sender,
		creds:  cfg.Credentials,
		logger: logger,
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() hclog.Logger {
	return c.logger
}

// PassportURL joins path onto the identity service endpoint.
func (c *Client) PassportURL(path string) string {
	return c.config.PassportEndpoint + path
}

// RemoteConfigURL joins path onto the remote-config service endpoint.
func (c *Client) RemoteConfigURL(path string) string {
	return c.config.RemoteConfigEndpoint + path
}

// PathSegment escapes an identifier for use as a single path segment.
func PathSegment(id string) string {
	return url.PathEscape(id)
}

// Do performs one authenticated call and normalizes the outcome.
//
// The returned error is non-nil only for a *ConfigError, in which case no
// network call was made. Every other failure is reported through the Result.
func (c *Client) Do(ctx context.Context, method, rawURL string, body any) (Result[Payload], error) {
	auth, err := c.creds.Header()
	if err != nil {
		return Result[Payload]{}, err
	}

	header := http.Header{}
	header.Set("Authorization", auth)

	outcome := c.sender.Send(ctx, &Request{
		Method:  method,
		URL:     rawURL,
		Header:  header,
		Body:    body,
		Timeout: c.config.Timeout,
	})

	res := Normalize(outcome)
	if !res.OK {
		c.logger.Debug("call failed",
			"method", method,
			"url", rawURL,
			"outcome", outcome.Kind.String(),
			"error", res.Error,
		)
	}
	return res, nil
}

// Exec performs a call whose response body carries nothing the caller needs.
func (c *Client) Exec(ctx context.Context, method, rawURL string, body any) (Result[struct{}], error) {
	res, err := c.Do(ctx, method, rawURL, body)
	if err != nil {
		return Result[struct{}]{}, err
	}
	if !res.OK {
		return FailWith[struct{}](res), nil
	}
	return Ok(struct{}{}), nil
}
