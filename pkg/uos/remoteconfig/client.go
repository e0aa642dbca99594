// Package remoteconfig provides the remote-config service operations.
package remoteconfig

import (
	"context"
	"errors"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// Options tune a remote-config client.
type Options struct {
	// LegacyShapeResult makes Fetch report a malformed config as OK with the
	// Error field set, as older clients did. Off by default, in which case the
	// Result is not OK.
	LegacyShapeResult bool
}

// Configs maps config key to config.
type Configs map[string]RemoteConfig

// Client wraps a uos.Client with the remote-config service operations.
type Client struct {
	uos     *uos.Client
	opts    Options
	configs *uos.Collection[Configs]
	logger  hclog.Logger
}

// New creates a remote-config client. Each client owns its config cache.
func New(c *uos.Client, opts ...Options) *Client {
	rc := &Client{
		uos:    c,
		logger: c.Logger().Named("remoteconfig"),
	}
	if len(opts) > 0 {
		rc.opts = opts[0]
	}
	rc.configs = uos.NewCollection("remote-configs", rc.listConfigs, rc.logger)
	return rc
}

func configPath(configID string) string {
	return "/v1/configs/" + uos.PathSegment(configID)
}

// FetchAll returns every remote config keyed by Key. The result, including a
// failed one, is cached by this client until a call with flush set.
func (c *Client) FetchAll(ctx context.Context, flush bool) (uos.Result[Configs], error) {
	return c.configs.FetchAll(ctx, flush)
}

// Get looks up a config by key in the cached list, fetching the list first if
// nothing is cached.
func (c *Client) Get(ctx context.Context, key string) (uos.Result[RemoteConfig], error) {
	res, err := c.configs.FetchAll(ctx, false)
	if err != nil || !res.OK {
		return uos.FailWith[RemoteConfig](res), err
	}

	cfg, ok := res.Value[key]
	if !ok || cfg.ConfigID == "" {
		return uos.Failf[RemoteConfig]("config %s not found", key), nil
	}
	return uos.Ok(cfg), nil
}

// Fetch retrieves one config by id, bypassing the cache.
func (c *Client) Fetch(ctx context.Context, configID string) (uos.Result[RemoteConfig], error) {
	res, err := c.uos.Do(ctx, http.MethodGet, c.uos.RemoteConfigURL(configPath(configID)), nil)
	if err != nil || !res.OK {
		return uos.FailWith[RemoteConfig](res), err
	}

	cfg, err := uos.Field[RemoteConfig](res.Value, "config", ValidRemoteConfig)
	if err != nil {
		c.logger.Debug("invalid config response", "config_id", configID, "error", err)
		shapeErr := uos.Failf[RemoteConfig]("result is not remote config for key %s", configID)
		if c.opts.LegacyShapeResult {
			shapeErr.OK = true
		}
		return shapeErr, nil
	}
	return uos.Ok(cfg), nil
}

type updateRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Update sets the key and string value of the config with configID.
func (c *Client) Update(ctx context.Context, configID, key, value string) (uos.Result[struct{}], error) {
	return c.uos.Exec(ctx, http.MethodPut, c.uos.RemoteConfigURL(configPath(configID)), updateRequest{
		Key:   key,
		Value: value,
		Type:  TypeString,
	})
}

// Delete removes the config with configID.
func (c *Client) Delete(ctx context.Context, configID string) (uos.Result[struct{}], error) {
	return c.uos.Exec(ctx, http.MethodDelete, c.uos.RemoteConfigURL(configPath(configID)), nil)
}

// listConfigs loads every config from the service.
func (c *Client) listConfigs(ctx context.Context) (uos.Result[Configs], error) {
	res, err := c.uos.Do(ctx, http.MethodGet, c.uos.RemoteConfigURL("/v1/configs"), nil)
	if err != nil || !res.OK {
		return uos.FailWith[Configs](res), err
	}

	items, skipped, err := uos.Items[RemoteConfig](res.Value, "configs", ValidRemoteConfig)
	if errors.Is(err, uos.ErrNotArray) {
		return uos.Fail[Configs]("result is not remote configs"), nil
	}
	if skipped > 0 {
		c.logger.Debug("skipped malformed remote configs", "skipped", skipped)
	}

	configs := make(Configs, len(items))
	for _, cfg := range items {
		configs[cfg.Key] = cfg
	}
	return uos.Ok(configs), nil
}
