package uos

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ErrMissingCredentials is wrapped by ConfigError when a secret is not set.
var ErrMissingCredentials = errors.New("app credentials are not defined")

// ConfigError reports a startup-time contract violation such as missing
// credentials. It is returned as a Go error, never as a failed Result, and
// retrying the call will not clear it.
type ConfigError struct {
	// Missing lists the names of the secrets that were not found.
	Missing []string
	Err     error
}

func (e *ConfigError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("uos configuration: %v", e.Err)
	}
	return fmt.Sprintf("uos configuration: %v: %s", e.Err, strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LookupFunc returns the value of a named secret and whether it is set.
type LookupFunc func(key string) (string, bool)

// Credentials derives the Basic auth token from the app id and the app service
// secret. The token, or the failure to build it, is computed on first use and
// kept for the lifetime of the value.
type Credentials struct {
	lookup    LookupFunc
	idKey     string
	secretKey string

	once  sync.Once
	token string
	err   error
}

// EnvCredentials reads UOS_APP_ID and UOS_APP_SERVICE_SECRET from the process
// environment on first use.
func EnvCredentials() *Credentials {
	return NewCredentials(os.LookupEnv)
}

// NewCredentials reads the two secrets through lookup on first use.
func NewCredentials(lookup LookupFunc) *Credentials {
	return &Credentials{
		lookup:    lookup,
		idKey:     EnvAppID,
		secretKey: EnvServiceSecret,
	}
}

// StaticCredentials uses the given app id and secret.
func StaticCredentials(appID, secret string) *Credentials {
	return NewCredentials(func(key string) (string, bool) {
		switch key {
		case EnvAppID:
			return appID, true
		case EnvServiceSecret:
			return secret, true
		}
		return "", false
	})
}

// Token returns base64(appID + ":" + secret).
func (c *Credentials) Token() (string, error) {
	c.once.Do(c.derive)
	return c.token, c.err
}

// Header returns the Authorization header value.
func (c *Credentials) Header() (string, error) {
	token, err := c.Token()
	if err != nil {
		return "", err
	}
	return "Basic " + token, nil
}

func (c *Credentials) derive() {
	appID, idOK := c.lookup(c.idKey)
	secret, secretOK := c.lookup(c.secretKey)

	if !idOK || !secretOK {
		var missing []string
		if !idOK {
			missing = append(missing, c.idKey)
		}
		if !secretOK {
			missing = append(missing, c.secretKey)
		}
		c.err = &ConfigError{Missing: missing, Err: ErrMissingCredentials}
		return
	}

	c.token = base64.StdEncoding.EncodeToString([]byte(appID + ":" + secret))
}
