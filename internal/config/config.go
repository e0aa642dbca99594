// Package config loads the uos CLI configuration from an optional HCL file and
// the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// Environment overrides for the file settings. Secrets are only read from the
// environment (UOS_APP_ID, UOS_APP_SERVICE_SECRET).
const (
	EnvPassportEndpoint     = "UOS_PASSPORT_ENDPOINT"
	EnvRemoteConfigEndpoint = "UOS_REMOTE_CONFIG_ENDPOINT"
	EnvTimeout              = "UOS_TIMEOUT"
)

// Config is the CLI configuration.
//
// Example (HCL):
//
//	passport_endpoint      = "https://p.unity.cn"
//	remote_config_endpoint = "https://c.unity.cn"
//	timeout                = "2s"
//	tls_verify             = true
//	log_level              = "debug"
type Config struct {
	PassportEndpoint     string `hcl:"passport_endpoint,optional"`
	RemoteConfigEndpoint string `hcl:"remote_config_endpoint,optional"`
	Timeout              string `hcl:"timeout,optional"`
	TLSVerify            *bool  `hcl:"tls_verify,optional"`
	LogLevel             string `hcl:"log_level,optional"`
}

// Load reads the HCL file at path from fs, when path is not empty, then
// applies environment overrides through getenv.
func Load(fs afero.Fs, path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := hclsimple.Decode(path, src, nil, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvPassportEndpoint); v != "" {
		cfg.PassportEndpoint = v
	}
	if v := getenv(EnvRemoteConfigEndpoint); v != "" {
		cfg.RemoteConfigEndpoint = v
	}
	if v := getenv(EnvTimeout); v != "" {
		cfg.Timeout = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err))
		} else if d <= 0 {
			result = multierror.Append(result, fmt.Errorf("timeout must be positive, got: %v", d))
		}
	}

	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error", "off":
	default:
		result = multierror.Append(result, fmt.Errorf("invalid log_level %q", c.LogLevel))
	}

	// Endpoints are checked by the client config.
	if err := c.clientConfig().Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// ClientConfig converts the file settings into a uos.Config.
func (c *Config) ClientConfig() (*uos.Config, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.clientConfig(), nil
}

func (c *Config) clientConfig() *uos.Config {
	cfg := uos.DefaultConfig()
	if c.PassportEndpoint != "" {
		cfg.PassportEndpoint = c.PassportEndpoint
	}
	if c.RemoteConfigEndpoint != "" {
		cfg.RemoteConfigEndpoint = c.RemoteConfigEndpoint
	}
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if c.TLSVerify != nil {
		cfg.TLSVerify = c.TLSVerify
	}
	return cfg
}
