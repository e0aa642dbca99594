package uos

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultPassportEndpoint is the base URL of the identity (passport) service.
	DefaultPassportEndpoint = "https://p.unity.cn"

	// DefaultRemoteConfigEndpoint is the base URL of the remote-config service.
	DefaultRemoteConfigEndpoint = "https://c.unity.cn"

	// DefaultTimeout applies to every call that does not carry its own timeout.
	DefaultTimeout = 1000 * time.Millisecond
)

// Config contains configuration for a UOS client.
//
// Zero fields are filled from DefaultConfig by New, so callers normally only set
// what they want to override:
//
//	client, err := uos.New(&uos.Config{
//	  Logger: hclog.Default(),
//	})
type Config struct {
	// PassportEndpoint is the base URL of the identity service.
	// Default: https://p.unity.cn
	PassportEndpoint string `json:"passportEndpoint"`

	// RemoteConfigEndpoint is the base URL of the remote-config service.
	// Default: https://c.unity.cn
	RemoteConfigEndpoint string `json:"remoteConfigEndpoint"`

	// Timeout for a single call.
	// Default: 1 second
	Timeout time.Duration `json:"timeout,omitempty"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Credentials supplies the Basic auth token. Defaults to env-backed credentials.
	Credentials *Credentials `json:"-"`

	// HTTPClient is used by the default Sender. Defaults to NewHTTPClient.
	HTTPClient *http.Client `json:"-"`

	// Sender performs HTTP calls. Defaults to an HTTPSender over HTTPClient.
	Sender Sender `json:"-"`

	// Logger (optional).
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		PassportEndpoint:     DefaultPassportEndpoint,
		RemoteConfigEndpoint: DefaultRemoteConfigEndpoint,
		Timeout:              DefaultTimeout,
		TLSVerify:            &tlsVerify,
	}
}

// applyDefaults fills zero fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.PassportEndpoint == "" {
		c.PassportEndpoint = defaults.PassportEndpoint
	}
	if c.RemoteConfigEndpoint == "" {
		c.RemoteConfigEndpoint = defaults.RemoteConfigEndpoint
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	if c.Credentials == nil {
		c.Credentials = EnvCredentials()
	}
	if c.HTTPClient == nil {
		c.HTTPClient = c.NewHTTPClient()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PassportEndpoint, validation.Required, validation.By(httpURL)),
		validation.Field(&c.RemoteConfigEndpoint, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Timeout, validation.Min(time.Millisecond)),
	)
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

// NewHTTPClient creates a configured HTTP client. Per-call timeouts are applied
// through the request context, so the client itself has none.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // opt-in for dev/test only
		}
	}

	return &http.Client{Transport: transport}
}
